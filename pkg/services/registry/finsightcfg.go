package registry

import (
	"fmt"

	"github.com/fin-tools/finsight/pkg/models/domain"
	"gopkg.in/ini.v1"
)

const defaultCurrency = "₹"

type cfgRegistry struct {
	cfg *ini.File
}

func NewCompanyRegistry(path string) (CompanyRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles() ([]domain.CompanyProfile, error) {
	var profiles []domain.CompanyProfile
	for _, section := range cr.cfg.Sections() {
		if section.Name() == ini.DefaultSection || len(section.Keys()) == 0 {
			continue
		}
		profiles = append(profiles, profileFromSection(section))
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(id string) (domain.CompanyProfile, error) {
	section, err := cr.cfg.GetSection(id)
	if err != nil {
		return domain.CompanyProfile{}, fmt.Errorf("company profile %q not found", id)
	}
	return profileFromSection(section), nil
}

func profileFromSection(section *ini.Section) domain.CompanyProfile {
	profile := domain.CompanyProfile{
		ID:         section.Name(),
		Name:       section.Key("name").String(),
		Currency:   section.Key("currency").String(),
		LedgerPath: section.Key("ledger").String(),
	}
	if profile.Name == "" {
		profile.Name = profile.ID
	}
	if profile.Currency == "" {
		profile.Currency = defaultCurrency
	}
	return profile
}
