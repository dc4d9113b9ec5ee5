package game

import (
	"fmt"

	"github.com/samdwyer/farmsim/internal/farm"
)

func clickMessage(res farm.ClickResult) string {
	switch res.Action {
	case farm.ClickHarvested:
		return fmt.Sprintf("Harvested %s", res.Kind)
	case farm.ClickPlanted:
		return fmt.Sprintf("Planted %s", res.Kind)
	default:
		return ""
	}
}

func outcomeMessage(out farm.Outcome) string {
	switch out.Effect {
	case farm.EffectSold:
		return fmt.Sprintf("Sold %d %s for %d gold", out.Amount, out.Kind, out.Gold)
	case farm.EffectBought:
		return fmt.Sprintf("Bought the AI Helper for %d gold", out.Gold)
	case farm.EffectWithdrew:
		return fmt.Sprintf("Withdrew %d %s from the shed", out.Amount, out.Kind)
	default:
		return ""
	}
}

func helperMessage(res farm.HelperResult) string {
	if res.Action == farm.HelperHarvested {
		return fmt.Sprintf("AI Helper stored a %s in the shed", res.Kind)
	}
	return ""
}
