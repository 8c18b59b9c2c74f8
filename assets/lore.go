package assets

// Greetings are shown in the message log when a sandbox opens. One is picked
// at random.
var Greetings = []string{
	"Your satchel smells faintly of pine resin and old apples.",
	"Somebody stitched 'DO NOT OVERFILL' inside the flap. Somebody ignored it.",
	"The strap has been repaired four times. The fifth will be your problem.",
	"A quartermaster's tag reads: '36 slots, no exceptions'.",
}

// Help is the key reference printed after the greeting.
var Help = []string{
	"1-9 select  Tab/i panel  u/Enter use  q drop  g pick up  arrows/hjkl move  Esc cancel/quit",
	"Panel open: left-drag moves stacks, right-hold moves one at a time, wheel scrolls the hotbar.",
}

// EffectLines describe a consumable being used, keyed by UseEffect verb.
// %s is the item name, %d the effect amount.
var EffectLines = map[string]string{
	"heal": "You eat the %s. (+%d health)",
	"feed": "You eat the %s. It fills you up. (+%d food)",
}
