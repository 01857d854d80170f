// Package command provides the command registry, parser, and handlers for the
// dungeon's text interface.
package command

// Categories for organizing commands.
const (
	CategoryCombat    = "combat"
	CategoryDungeon   = "dungeon"
	CategoryCharacter = "character"
	CategoryShop      = "shop"
	CategorySystem    = "system"
)

// Handler identifiers mapping commands to session operations.
const (
	HandlerAttack    = "attack"
	HandlerSkill     = "skill"
	HandlerPotion    = "potion"
	HandlerFlee      = "flee"
	HandlerExplore   = "explore"
	HandlerBoss      = "boss"
	HandlerDescend   = "descend"
	HandlerLook      = "look"
	HandlerStatus    = "status"
	HandlerInventory = "inventory"
	HandlerEquipment = "equipment"
	HandlerEquip     = "equip"
	HandlerUnequip   = "unequip"
	HandlerDelete    = "delete"
	HandlerBuy       = "buy"
	HandlerSell      = "sell"
	HandlerPrices    = "prices"
	HandlerHelp      = "help"
	HandlerQuit      = "quit"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Usage shows the argument form, e.g. "equip <item>".
	Usage string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the command for the help listing.
	Category string
	// Handler maps to the session operation.
	Handler string
}

// BuiltinCommands returns all built-in commands for the game.
func BuiltinCommands() []Command {
	return []Command{
		// Combat commands
		{Name: "attack", Aliases: []string{"a", "att", "kill"}, Help: "Attack the enemy", Category: CategoryCombat, Handler: HandlerAttack},
		{Name: "skill", Aliases: []string{"cast", "sk"}, Help: "Use your class skill", Category: CategoryCombat, Handler: HandlerSkill},
		{Name: "potion", Aliases: []string{"drink", "quaff"}, Usage: "potion [rarity]", Help: "Drink a health potion, the cheapest one by default", Category: CategoryCombat, Handler: HandlerPotion},
		{Name: "flee", Aliases: []string{"run"}, Help: "Flee the encounter", Category: CategoryCombat, Handler: HandlerFlee},

		// Dungeon commands
		{Name: "explore", Aliases: []string{"x", "fight"}, Help: "Search the floor for an enemy", Category: CategoryDungeon, Handler: HandlerExplore},
		{Name: "boss", Aliases: nil, Help: "Challenge the floor boss", Category: CategoryDungeon, Handler: HandlerBoss},
		{Name: "descend", Aliases: []string{"down"}, Help: "Open the floor's chest and go down a floor", Category: CategoryDungeon, Handler: HandlerDescend},
		{Name: "look", Aliases: []string{"l"}, Help: "Look at the enemy you are fighting", Category: CategoryDungeon, Handler: HandlerLook},

		// Character commands
		{Name: "status", Aliases: []string{"st", "stats"}, Help: "Show your character", Category: CategoryCharacter, Handler: HandlerStatus},
		{Name: "inventory", Aliases: []string{"inv", "i"}, Help: "List your items", Category: CategoryCharacter, Handler: HandlerInventory},
		{Name: "equipment", Aliases: []string{"eq"}, Help: "Show equipped items", Category: CategoryCharacter, Handler: HandlerEquipment},
		{Name: "equip", Aliases: []string{"wear", "wield"}, Usage: "equip <item>", Help: "Equip an item by id prefix", Category: CategoryCharacter, Handler: HandlerEquip},
		{Name: "unequip", Aliases: []string{"remove"}, Usage: "unequip <weapon|armor|ring>", Help: "Empty an equipment slot", Category: CategoryCharacter, Handler: HandlerUnequip},
		{Name: "delete", Aliases: []string{"drop"}, Usage: "delete <item>", Help: "Discard an item or a potion stack", Category: CategoryCharacter, Handler: HandlerDelete},

		// Shop commands
		{Name: "buy", Aliases: nil, Usage: "buy <rarity> [qty]", Help: "Buy health potions", Category: CategoryShop, Handler: HandlerBuy},
		{Name: "sell", Aliases: nil, Usage: "sell <item>", Help: "Sell an item or one potion", Category: CategoryShop, Handler: HandlerSell},
		{Name: "prices", Aliases: []string{"shop"}, Help: "List potion prices", Category: CategoryShop, Handler: HandlerPrices},

		// System commands
		{Name: "help", Aliases: []string{"?"}, Help: "List commands", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"exit", "q"}, Help: "Leave the dungeon", Category: CategorySystem, Handler: HandlerQuit},
	}
}
