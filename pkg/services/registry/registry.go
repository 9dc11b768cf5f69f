package registry

import (
	"github.com/fin-tools/finsight/pkg/models/domain"
)

// CompanyRegistry resolves company profiles from the operator's profile
// file (default ~/.finsightcfg, one INI section per company).
type CompanyRegistry interface {
	GetProfiles() ([]domain.CompanyProfile, error)
	GetProfile(id string) (domain.CompanyProfile, error)
}
