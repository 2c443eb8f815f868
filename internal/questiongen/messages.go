package questiongen

// roasts are shown after a wrong answer.
var roasts = []string{
	"Bruh, a 5-year-old could solve this! 🍼",
	"Are you even IIT material? 🤔",
	"Harvard rejects are faster than you! 🏃‍♂️",
	"My grandma solves these in her sleep! 😴",
	"Is this your first day with numbers? 🔢",
	"Maybe try finger counting? 👆",
	"The calculator is crying right now! 😭",
	"Even the boss question is laughing! 😂",
	"Did you skip math class... forever? 🏫",
	"The numbers are judging you! 👀",
	"This is why we can't have nice things! 💔",
	"Are you trying to set a world record for slowness? 🐌",
	"The answer was literally staring at you! 👁️",
	"Maybe math just isn't your thing... 🤷‍♂️",
	"I've seen snails solve faster! 🐌",
	"Did you use a random number generator? 🎲",
	"The math gods are disappointed! ⚡",
	"This is painful to watch! 😫",
	"Maybe stick to counting sheep? 🐑",
	"The universe just facepalmed! 🤦‍♂️",
}

// compliments are shown after a correct answer.
var compliments = []string{
	"Math Genius! 🌟",
	"Unstoppable! 💪",
	"Brilliant! 🧠",
	"Perfect! ✅",
	"Amazing! 😲",
	"Incredible! 🚀",
	"Masterful! 🎯",
	"Flawless! 💎",
	"Phenomenal! 🌈",
	"Legendary! 🏆",
}

// RandomRoast picks a roast message from the fixed pool.
func (g *Generator) RandomRoast() string {
	return roasts[g.rng.IntN(len(roasts))]
}

// RandomCompliment picks a compliment message from the fixed pool.
func (g *Generator) RandomCompliment() string {
	return compliments[g.rng.IntN(len(compliments))]
}
