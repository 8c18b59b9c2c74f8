package game

import (
	"strconv"
	"strings"

	"satchel/assets"
	"satchel/internal/item"
)

// vitals is the little body consumables act on.
type vitals struct {
	health, maxHealth int
	food, maxFood     int
}

// parseEffect splits a use effect such as "heal 4" into its verb and amount.
// A missing or malformed amount counts as 1.
func parseEffect(effect string) (verb string, amount int) {
	fields := strings.Fields(effect)
	if len(fields) == 0 {
		return "", 0
	}
	verb = strings.ToLower(fields[0])
	amount = 1
	if len(fields) > 1 {
		if n, err := strconv.Atoi(fields[1]); err == nil {
			amount = n
		}
	}
	return verb, amount
}

// Consume applies a consumable's use effect. It implements
// usage.EffectHandler.
func (g *Game) Consume(def item.Definition) {
	verb, amount := parseEffect(def.UseEffect)
	switch verb {
	case "heal":
		g.vitals.health = min(g.vitals.health+amount, g.vitals.maxHealth)
	case "feed":
		g.vitals.food = min(g.vitals.food+amount, g.vitals.maxFood)
	}
	if line, ok := assets.EffectLines[verb]; ok {
		g.renderer.Log(line, def.Name, amount)
	} else {
		g.renderer.Log("You use the %s.", def.Name)
	}
	g.log.Debug("consume", "item", def.ID, "effect", def.UseEffect, "health", g.vitals.health, "food", g.vitals.food)
}
