package api

type Nudge struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

type NudgeList struct {
	CompanyID string  `json:"company_id"`
	Nudges    []Nudge `json:"nudges"`
}

type AlertList struct {
	CompanyID string  `json:"company_id"`
	Alerts    []Alert `json:"alerts"`
}
