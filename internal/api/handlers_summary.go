package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nestling/internal/services"
)

type summaryResponse struct {
	services.ProfileSummary
	Messages        map[string]string `json:"messages"`
	Recommendations []string          `json:"recommendation_messages,omitempty"`
}

func (handler *Handler) GetSummary(c *fiber.Ctx) error {
	profile, err := handler.profileService.GetProfile(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}

	summary, err := handler.summaryService.BuildSummary(profile, handler.now(), handler.location)
	if err != nil {
		return serviceError(c, err)
	}

	language := currentLanguage(c, handler.i18n.DefaultLanguage())
	response := summaryResponse{
		ProfileSummary: summary,
		Messages:       handler.summaryMessages(language, summary),
	}
	if summary.WeightStatus != nil {
		for _, code := range summary.WeightStatus.Recommendations {
			response.Recommendations = append(response.Recommendations, handler.i18n.Translate(language, code))
		}
	}
	return c.JSON(response)
}

// summaryMessages renders the summary's semantic codes into display text.
// The codes themselves stay in the response so clients can do their own
// localization instead.
func (handler *Handler) summaryMessages(language string, summary services.ProfileSummary) map[string]string {
	messages := map[string]string{
		"weight_trend":   handler.i18n.Translate(language, "trend."+summary.WeightTrend),
		"weight_gain":    handler.i18n.Translate(language, "growth."+summary.WeightGain.Status),
		"pee_frequency":  handler.i18n.Translate(language, "pee_frequency."+summary.Diaper.PeeFrequency),
		"poop_frequency": handler.i18n.Translate(language, "poop_frequency."+summary.Diaper.PoopFrequency),
	}

	if summary.Diaper.DehydrationRisk {
		messages["dehydration_risk"] = handler.i18n.Translate(language, "risk.dehydration")
	}
	if summary.Diaper.DiarrheaRisk {
		messages["diarrhea_risk"] = handler.i18n.Translate(language, "risk.diarrhea")
	}

	if status := summary.WeightStatus; status != nil {
		messages["weight_status"] = handler.i18n.Translate(language, "status."+status.Status)
		messages["weight_category"] = handler.i18n.Translate(language, "category."+status.Category)
		messages["growth_status"] = handler.i18n.Translate(language, "growth."+status.GrowthStatus)
		messages["trajectory"] = handler.i18n.Translate(language, "trajectory."+status.TrajectoryStatus)
		if status.WeeklyTargetGrams > 0 {
			messages["weekly_target"] = handler.i18n.Translatef(language, "weight.weekly_target", status.WeeklyTargetGrams)
		}
		if status.WeeksToTarget > 0 {
			messages["weeks_to_target"] = handler.i18n.Translatef(language, "weight.weeks_to_target", status.WeeksToTarget)
		}
	}

	return messages
}
