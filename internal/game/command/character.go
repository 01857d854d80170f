package command

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/dungeon/internal/game/inventory"
	"github.com/cory-johannsen/dungeon/internal/game/item"
	"github.com/cory-johannsen/dungeon/internal/game/session"
)

// idPrefixLen is how much of an item id listings show.
const idPrefixLen = 8

// HandleStatus processes the "status" command.
func HandleStatus(sess *session.Session) string {
	ch := sess.Character()
	eff := ch.Stats()
	p := ch.Progress()
	lines := []string{
		fmt.Sprintf("%s the %s, level %d (%d/%d exp)", ch.Name(), ch.Class(), p.Level, p.CurrentExp, p.RequiredExp),
		fmt.Sprintf("Floor %d (deepest %d), highest level %d", ch.Floor(), ch.HighestFloor(), p.HighestLevel),
		fmt.Sprintf("Health %d/%d  Mana %d/%d", ch.Health(), eff.MaxHealth, ch.Mana(), eff.MaxMana),
		fmt.Sprintf("Damage %d  Defense %d  Crit %.1f%% x%.2f", eff.Damage, eff.Defense, eff.CritHitRate*100, eff.CritDamageMultiplier),
		fmt.Sprintf("Skill: %s", ch.Skill()),
		inventory.FormatGold(ch.Gold()),
	}
	return strings.Join(lines, "\n")
}

// HandleInventory processes the "inventory" command.
func HandleInventory(sess *session.Session) string {
	ch := sess.Character()
	inv := ch.Inventory()
	if inv.Len() == 0 {
		return "Your pack is empty."
	}
	var lines []string
	for _, id := range inv.EquippableIDs() {
		e, _ := inv.Equippable(id)
		marker := " "
		if ch.IsEquipped(id) {
			marker = "*"
		}
		lines = append(lines, fmt.Sprintf("%s %s  %s", marker, shortID(id), item.Describe(e)))
	}
	for _, name := range inv.ConsumableNames() {
		c, _ := inv.Consumable(name)
		lines = append(lines, fmt.Sprintf("  %dx %s", c.Amount, name))
	}
	return strings.Join(lines, "\n")
}

// HandleEquipment processes the "equipment" command.
func HandleEquipment(sess *session.Session) string {
	ch := sess.Character()
	lines := make([]string, 0, len(item.Slots))
	for _, s := range item.Slots {
		e, ok := ch.Equipped(s)
		if !ok {
			lines = append(lines, fmt.Sprintf("%-7s (empty)", s.String()+":"))
			continue
		}
		lines = append(lines, fmt.Sprintf("%-7s %s", s.String()+":", item.Describe(e)))
	}
	return strings.Join(lines, "\n")
}

// HandleEquip processes the "equip" command. arg is an item id or a unique
// prefix of one.
//
// Precondition: sess must not be nil.
// Postcondition: On success the item occupies its slot and any previous
// occupant is back in the pack unequipped.
func HandleEquip(sess *session.Session, arg string) string {
	if arg == "" {
		return "Usage: equip <item>"
	}
	ch := sess.Character()
	id, msg := resolveItem(ch.Inventory(), arg)
	if msg != "" {
		return msg
	}
	if err := sess.Equip(id); err != nil {
		return errorText(err)
	}
	e, _ := ch.Inventory().Equippable(id)
	return fmt.Sprintf("You equip %s.", e.DisplayName())
}

// HandleUnequip processes the "unequip" command. arg is a slot name.
func HandleUnequip(sess *session.Session, arg string) string {
	slot, ok := parseSlot(arg)
	if !ok {
		return "Usage: unequip <weapon|armor|ring>"
	}
	ch := sess.Character()
	e, worn := ch.Equipped(slot)
	if !worn {
		return fmt.Sprintf("Your %s slot is already empty.", slot)
	}
	if err := sess.Unequip(slot); err != nil {
		return errorText(err)
	}
	return fmt.Sprintf("You unequip %s.", e.DisplayName())
}

// HandleDelete processes the "delete" command. arg is an item id prefix or a
// potion rarity or name; a potion deletes the whole stack.
func HandleDelete(sess *session.Session, arg string) string {
	if arg == "" {
		return "Usage: delete <item>"
	}
	ch := sess.Character()
	key, msg := resolveKey(ch.Inventory(), arg)
	if msg != "" {
		return msg
	}
	if err := sess.Delete(key); err != nil {
		return errorText(err)
	}
	return "Discarded."
}

func shortID(id string) string {
	if len(id) <= idPrefixLen {
		return id
	}
	return id[:idPrefixLen]
}

// resolveItem finds the equippable whose id is arg or starts with it. msg is
// non-empty when no single item matches.
func resolveItem(inv *inventory.Inventory, arg string) (id, msg string) {
	var matches []string
	for _, candidate := range inv.EquippableIDs() {
		if candidate == arg {
			return candidate, ""
		}
		if strings.HasPrefix(candidate, arg) {
			matches = append(matches, candidate)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Sprintf("%s: not found in your pack", arg)
	case 1:
		return matches[0], ""
	default:
		return "", fmt.Sprintf("%s: matches %d items, use a longer prefix", arg, len(matches))
	}
}

// resolveKey resolves arg to a potion stack name or an equippable id.
func resolveKey(inv *inventory.Inventory, arg string) (string, string) {
	for _, r := range item.Rarities {
		name := item.HealthPotionName(r)
		if strings.EqualFold(arg, r.String()) || strings.EqualFold(arg, name) {
			if _, ok := inv.Consumable(name); ok {
				return name, ""
			}
			return "", fmt.Sprintf("%s: not found in your pack", arg)
		}
	}
	return resolveItem(inv, arg)
}

func parseSlot(arg string) (item.Slot, bool) {
	for _, s := range item.Slots {
		if strings.EqualFold(arg, s.String()) {
			return s, true
		}
	}
	return 0, false
}
