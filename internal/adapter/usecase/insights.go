package usecase

import (
	"fmt"
	"math"

	"recruitads/internal/core/domain"
	"recruitads/internal/engine/embedding"
)

// MaxTips bounds the optimization tips in a response.
const MaxTips = 3

var platformNotes = map[domain.Platform]string{
	domain.PlatformFacebook: "Bred räckvidd för de flesta yrkesgrupper",
	domain.PlatformLinkedIn: "Professionellt nätverk för kvalificerade roller",
	domain.PlatformSnapchat: "Yngre målgrupp, bra för instegsroller",
	domain.PlatformTikTok:   "Växande plattform för kreativa roller",
	domain.PlatformReddit:   "Nischade communities, bäst för specialistroller",
}

// roleNotes override platformNotes for specific canonical roles.
var roleNotes = map[domain.Platform]map[string]string{
	domain.PlatformFacebook: {
		"sjuksköterska": "Sjukvårdspersonal är mycket aktiva på Facebook",
		"säljare":       "B2C-säljare når bred målgrupp här",
	},
	domain.PlatformLinkedIn: {
		"utvecklare": "IT-proffs nätverkar aktivt på LinkedIn",
		"chef":       "Beslutsfattare och ledare är mest aktiva här",
		"ingenjör":   "Tekniska roller har hög närvaro",
	},
}

var roleTips = map[string][]string{
	"sjuksköterska": {
		"Publicera på kvällar och helger när sjukvårdspersonal är lediga",
		"Framhäv work-life balance och flexibilitet",
	},
	"utvecklare": {
		"Fokusera på tech-stack och utvecklingsmöjligheter",
		"Publicera tis-tors kl 9-11 för bäst resultat",
	},
	"säljare": {
		"Betona provisionsmöjligheter och karriärvägar",
		"Använd video för att visa företagskulturen",
	},
}

var channelTips = map[domain.Platform]string{
	domain.PlatformLinkedIn: "LinkedIn: Använd Sponsored InMail för direktkontakt",
	domain.PlatformFacebook: "Facebook: Testa både feed och stories för maximal räckvidd",
	domain.PlatformTikTok:   "TikTok: Skapa autentiskt content som visar arbetsmiljön",
}

const defaultRoleTip = "Testa olika budskap för att hitta vad som resonerar"

// channelInsights derives the statistical insight strings for one channel.
// It always returns at least one insight.
func channelInsights(role string, pred domain.Prediction, stats domain.PlatformStats, roleAvgCTR float64) []string {
	var out []string

	if pred.Degraded {
		out = append(out, "Inga jämförbara kampanjer, plattformens snitt används")
	} else if roleAvgCTR > 0 {
		diff := (pred.CTR - roleAvgCTR) / roleAvgCTR * 100
		switch {
		case diff >= 10:
			out = append(out, fmt.Sprintf("CTR %.0f%% över rollens snitt", diff))
		case diff <= -10:
			out = append(out, fmt.Sprintf("CTR %.0f%% under rollens snitt", -diff))
		}
	}

	switch {
	case pred.CTR > 3:
		out = append(out, fmt.Sprintf("Mycket högt engagemang (%.1f%% CTR)", pred.CTR))
	case pred.CTR > 2:
		out = append(out, fmt.Sprintf("Bra engagemang (%.1f%% CTR)", pred.CTR))
	case pred.CTR < 1:
		out = append(out, fmt.Sprintf("Lågt engagemang (%.1f%% CTR)", pred.CTR))
	}

	if pred.CPC != nil {
		switch {
		case *pred.CPC < 20:
			out = append(out, fmt.Sprintf("Kostnadseffektiv (%.0f kr/klick)", *pred.CPC))
		case *pred.CPC > 40:
			out = append(out, fmt.Sprintf("Högre kostnad (%.0f kr/klick)", *pred.CPC))
		}
	}

	if note, ok := roleNotes[pred.Platform][embedding.Key(role)]; ok {
		out = append(out, note)
	} else if note, ok := platformNotes[pred.Platform]; ok {
		out = append(out, note)
	}

	switch n := stats.CampaignCount; {
	case n < 5:
		out = append(out, fmt.Sprintf("Begränsad data (%d kampanjer)", n))
	case n > 20:
		out = append(out, fmt.Sprintf("Väl testad (%d kampanjer)", n))
	}
	if stats.AvgCTR > 0 && stats.CampaignCount >= 5 {
		if cv := stats.CTRStd / stats.AvgCTR; cv > 0.5 && !math.IsInf(cv, 0) {
			out = append(out, fmt.Sprintf("Hög variation i resultat (CV=%.2f)", cv))
		}
	}

	if len(out) == 0 {
		out = append(out, "Standardrekommendation baserad på liknande roller")
	}
	return out
}

// optimizationTips returns at most MaxTips tips: a data warning first when
// the recommendation rests on thin history, then role and channel tips.
func optimizationTips(match domain.RoleMatch, method domain.BudgetMethod, channels []domain.ChannelRecommendation) []string {
	var tips []string
	switch {
	case match.IsFallback():
		tips = append(tips, "Rollen saknas i historiken: rekommendationen bygger på globala snitt, följ upp resultatet efter första veckan")
	case method == domain.BudgetHeuristic:
		tips = append(tips, "Få historiska kampanjer: budgeten är en schablon, justera efter första veckans utfall")
	}

	if rt, ok := roleTips[embedding.Key(match.Role)]; ok {
		tips = append(tips, rt...)
	} else {
		tips = append(tips, defaultRoleTip)
	}

	for _, ch := range channels {
		if ch.BudgetShare <= 0 {
			continue
		}
		if tip, ok := channelTips[ch.Platform]; ok {
			tips = append(tips, tip)
		}
	}
	if len(tips) > MaxTips {
		tips = tips[:MaxTips]
	}
	return tips
}
