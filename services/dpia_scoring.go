package services

import (
	"math"

	"github.com/blogem/privacy-toolkit/models"
)

// Risk level bounds on the normalized score; each bound is exclusive
const (
	moderateRiskThreshold = 25
	highRiskThreshold     = 50
	veryHighRiskThreshold = 75
)

// ClassifyRisk maps a normalized score to its risk level.
// A score equal to a threshold belongs to the higher level.
func ClassifyRisk(normalizedScore int) models.RiskLevel {
	switch {
	case normalizedScore < moderateRiskThreshold:
		return models.RiskLow
	case normalizedScore < highRiskThreshold:
		return models.RiskModerate
	case normalizedScore < veryHighRiskThreshold:
		return models.RiskHigh
	default:
		return models.RiskVeryHigh
	}
}

type categoryTotals struct {
	total float64
	max   float64
}

// ScoreDPIA computes the risk score and recommendations of a questionnaire.
//
// Only answered questions count towards both the total and the maximum, so the
// normalized score expresses severity relative to what was answered. Answers to
// unknown questions are ignored, values are clamped to the 1..4 range and
// questions with a non-positive weight do not contribute. With nothing answered
// the score is 0.
func ScoreDPIA(questions []models.DPIAQuestion, answers models.DPIAAnswers, rules models.DPIARuleSet) models.DPIAResult {
	var total, maxScore float64
	answered := 0
	categories := make(map[string]*categoryTotals)

	for _, question := range questions {
		value, ok := answers[question.ID]
		if !ok {
			continue
		}
		answered++
		if question.Weight <= 0 {
			continue
		}

		value = clampAnswer(value)
		score := float64(value) * question.Weight
		possible := float64(models.DPIAMaxAnswerValue) * question.Weight
		total += score
		maxScore += possible

		totals, ok := categories[question.Category]
		if !ok {
			totals = &categoryTotals{}
			categories[question.Category] = totals
		}
		totals.total += score
		totals.max += possible
	}

	normalized := normalize(total, maxScore)
	level := ClassifyRisk(normalized)

	categoryScores := make(map[string]int, len(categories))
	for category, totals := range categories {
		categoryScores[category] = normalize(totals.total, totals.max)
	}

	return models.DPIAResult{
		TotalScore:       total,
		MaxPossibleScore: maxScore,
		NormalizedScore:  normalized,
		RiskLevel:        level,
		Recommendations:  recommend(level, answers, rules),
		CategoryScores:   categoryScores,
		AnsweredCount:    answered,
		QuestionCount:    len(questions),
	}
}

// recommend lists the narrative for the level followed by every matching rule in declaration order
func recommend(level models.RiskLevel, answers models.DPIAAnswers, rules models.DPIARuleSet) []string {
	recommendations := make([]string, 0, len(rules.Rules)+1)
	if narrative := rules.Narratives[level]; narrative != "" {
		recommendations = append(recommendations, narrative)
	}

	for _, rule := range rules.Rules {
		value, ok := answers[rule.QuestionID]
		if ok && clampAnswer(value) >= rule.MinValue {
			recommendations = append(recommendations, rule.Recommendation)
		}
	}

	return recommendations
}

func normalize(total, maxScore float64) int {
	if maxScore <= 0 {
		return 0
	}
	return int(math.Round(100 * total / maxScore))
}

func clampAnswer(value int) int {
	if value < models.DPIAMinAnswerValue {
		return models.DPIAMinAnswerValue
	}
	if value > models.DPIAMaxAnswerValue {
		return models.DPIAMaxAnswerValue
	}
	return value
}
