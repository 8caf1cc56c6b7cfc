package services

import (
	"github.com/blogem/privacy-toolkit/config"
	"github.com/blogem/privacy-toolkit/repositories"
)

// Services holds all service instances
type Services struct {
	Consent ConsentService
	DSR     DSRService
	Breach  BreachService
	DPIA    DPIAService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, policy config.Policy, clock Clock) *Services {
	if clock == nil {
		clock = SystemClock()
	}

	return &Services{
		Consent: NewConsentService(repos.Consent, policy.Consent, clock),
		DSR:     NewDSRService(repos.DSR, policy.DSR, clock),
		Breach:  NewBreachService(repos.Breach, clock),
		DPIA:    NewDPIAService(repos.DPIA, policy.DPIA, clock),
	}
}
