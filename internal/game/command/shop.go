package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cory-johannsen/dungeon/internal/game/inventory"
	"github.com/cory-johannsen/dungeon/internal/game/item"
	"github.com/cory-johannsen/dungeon/internal/game/session"
)

// HandleBuy processes the "buy" command. args are a rarity and an optional
// quantity, defaulting to 1.
//
// Precondition: sess must not be nil.
// Postcondition: On success the potions are in the pack and their price was
// deducted; on failure nothing changed.
func HandleBuy(sess *session.Session, args []string) string {
	if len(args) == 0 || len(args) > 2 {
		return "Usage: buy <rarity> [qty]"
	}
	r, ok := parseRarity(args[0])
	if !ok {
		return fmt.Sprintf("unknown rarity %q", args[0])
	}
	qty := uint64(1)
	if len(args) == 2 {
		var err error
		qty, err = strconv.ParseUint(args[1], 10, 32)
		if err != nil || qty == 0 {
			return fmt.Sprintf("invalid quantity %q", args[1])
		}
	}
	cost, err := sess.Buy(r, uint32(qty))
	if err != nil {
		return errorText(err)
	}
	return fmt.Sprintf("You buy %d %s for %s.", qty, item.HealthPotionName(r), inventory.FormatGold(cost))
}

// HandleSell processes the "sell" command. arg is an item id prefix, or a
// potion rarity or name; potions are sold one at a time.
func HandleSell(sess *session.Session, arg string) string {
	if arg == "" {
		return "Usage: sell <item>"
	}
	key, msg := resolveKey(sess.Character().Inventory(), arg)
	if msg != "" {
		return msg
	}
	gold, err := sess.Sell(key)
	if err != nil {
		return errorText(err)
	}
	return fmt.Sprintf("Sold for %s.", inventory.FormatGold(gold))
}

// HandlePrices processes the "prices" command.
func HandlePrices(sess *session.Session) string {
	shop := sess.Shop()
	lines := make([]string, 0, len(item.Rarities))
	for _, r := range item.Rarities {
		lines = append(lines, fmt.Sprintf("%-24s %s", item.HealthPotionName(r), inventory.FormatGold(shop.PotionPrice(r))))
	}
	return strings.Join(lines, "\n")
}

func parseRarity(s string) (item.Rarity, bool) {
	for _, r := range item.Rarities {
		if strings.EqualFold(s, r.String()) {
			return r, true
		}
	}
	return 0, false
}
