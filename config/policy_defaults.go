package config

import "github.com/blogem/privacy-toolkit/models"

// DefaultPolicy returns the built-in policy. Each call returns fresh maps and slices.
func DefaultPolicy() Policy {
	return Policy{
		DSR: DSRPolicy{
			SLADays: map[models.DSRType]int{
				models.DSRAccess:        30,
				models.DSRRectification: 30,
				models.DSRErasure:       15,
				models.DSRRestriction:   30,
				models.DSRPortability:   30,
				models.DSRObjection:     30,
			},
		},
		Consent: ConsentPolicy{
			Version:    "1.0",
			MaxAgeDays: 365,
			Options: []models.ConsentOption{
				{
					ID:          "necessary",
					Name:        "Strictly necessary",
					Description: "Required for the site to work: session handling, security and load balancing.",
					Required:    true,
				},
				{
					ID:          "preferences",
					Name:        "Preferences",
					Description: "Remembers choices such as language and region.",
				},
				{
					ID:          "analytics",
					Name:        "Analytics",
					Description: "Aggregated usage statistics that help improve the service.",
				},
				{
					ID:          "marketing",
					Name:        "Marketing",
					Description: "Personalised advertising and campaign measurement.",
				},
			},
		},
		DPIA: DPIAPolicy{
			Questions:  defaultQuestions(),
			Narratives: defaultNarratives(),
			Rules:      defaultRules(),
		},
	}
}

func severityOptions(labels ...string) []models.DPIAOption {
	options := make([]models.DPIAOption, len(labels))
	for i, label := range labels {
		options[i] = models.DPIAOption{Value: i + 1, Label: label}
	}
	return options
}

func defaultQuestions() []models.DPIAQuestion {
	return []models.DPIAQuestion{
		{
			ID:       "data_sensitivity",
			Text:     "What is the most sensitive type of personal data processed?",
			Category: "data",
			Weight:   3,
			Options:  severityOptions("Contact details only", "Financial or behavioural data", "Location or profiling data", "Special category data (health, biometric, beliefs)"),
		},
		{
			ID:       "data_volume",
			Text:     "How many data subjects are affected?",
			Category: "data",
			Weight:   2,
			Options:  severityOptions("Fewer than 1,000", "1,000 to 10,000", "10,000 to 100,000", "More than 100,000"),
		},
		{
			ID:       "vulnerable_subjects",
			Text:     "Are vulnerable data subjects involved (children, patients, employees)?",
			Category: "subjects",
			Weight:   3,
			Options:  severityOptions("No", "Possibly, incidentally", "Yes, a minority", "Yes, primarily"),
		},
		{
			ID:       "automated_decisions",
			Text:     "Does the processing involve automated decision-making with legal or similar effects?",
			Category: "processing",
			Weight:   3,
			Options:  severityOptions("No", "Decision support only", "Automated with human review", "Fully automated"),
		},
		{
			ID:       "systematic_monitoring",
			Text:     "Does the processing systematically monitor individuals?",
			Category: "processing",
			Weight:   2,
			Options:  severityOptions("No", "Occasional", "Regular, limited scope", "Continuous or public spaces"),
		},
		{
			ID:       "new_technology",
			Text:     "Does the processing use new or innovative technology?",
			Category: "technology",
			Weight:   1,
			Options:  severityOptions("Established technology", "Established, new configuration", "Recently adopted technology", "Novel technology (AI, IoT, biometrics)"),
		},
		{
			ID:       "third_party_sharing",
			Text:     "Is personal data shared with third parties?",
			Category: "sharing",
			Weight:   2,
			Options:  severityOptions("No sharing", "Processors under contract", "Independent controllers", "Broad or public disclosure"),
		},
		{
			ID:       "international_transfers",
			Text:     "Is personal data transferred outside the EEA?",
			Category: "sharing",
			Weight:   2,
			Options:  severityOptions("No", "Adequacy decision countries", "Standard contractual clauses", "No transfer mechanism in place"),
		},
		{
			ID:       "security_measures",
			Text:     "How mature are the technical and organisational security measures?",
			Category: "security",
			Weight:   2,
			Options:  severityOptions("Certified and audited", "Documented and tested", "Partially documented", "Ad hoc or absent"),
		},
		{
			ID:       "retention_period",
			Text:     "How long is personal data retained?",
			Category: "retention",
			Weight:   1,
			Options:  severityOptions("Deleted after the purpose is fulfilled", "Up to one year", "Several years", "Indefinitely or undefined"),
		},
	}
}

func defaultNarratives() map[models.RiskLevel]string {
	return map[models.RiskLevel]string{
		models.RiskLow:      "Low risk: the processing may proceed with standard safeguards. Review the assessment when the processing changes.",
		models.RiskModerate: "Moderate risk: implement the recommended measures before the processing starts and document the residual risk.",
		models.RiskHigh:     "High risk: additional safeguards are required and the data protection officer must sign off before the processing starts.",
		models.RiskVeryHigh: "Very high risk: consult the supervisory authority before starting the processing if the risk cannot be mitigated.",
	}
}

func defaultRules() []models.RecommendationRule {
	return []models.RecommendationRule{
		{QuestionID: "data_sensitivity", MinValue: 4, Recommendation: "Identify an Article 9 condition for processing special category data and restrict access to it."},
		{QuestionID: "data_volume", MinValue: 3, Recommendation: "Apply data minimisation and pseudonymisation to reduce the impact of large-scale processing."},
		{QuestionID: "vulnerable_subjects", MinValue: 3, Recommendation: "Provide age-appropriate or tailored privacy information and consider additional consent safeguards."},
		{QuestionID: "automated_decisions", MinValue: 3, Recommendation: "Offer human intervention and a way to contest automated decisions."},
		{QuestionID: "systematic_monitoring", MinValue: 3, Recommendation: "Limit monitoring to what is necessary and inform data subjects clearly."},
		{QuestionID: "new_technology", MinValue: 4, Recommendation: "Run a technical review of the new technology and reassess after deployment."},
		{QuestionID: "third_party_sharing", MinValue: 3, Recommendation: "Put data sharing agreements in place and review recipients' safeguards."},
		{QuestionID: "international_transfers", MinValue: 4, Recommendation: "Establish a transfer mechanism (adequacy, SCCs or BCRs) and run a transfer impact assessment."},
		{QuestionID: "security_measures", MinValue: 3, Recommendation: "Document security measures and schedule a penetration test."},
		{QuestionID: "retention_period", MinValue: 3, Recommendation: "Define and enforce retention periods with automated deletion."},
	}
}
