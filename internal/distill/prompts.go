package distill

// EmptyPrompt 替代空白提示发给模型和写入样本
const EmptyPrompt = "(empty message)"

// VoiceRules 追加在人设后面的语气约束
const VoiceRules = `

STRICT VOICE RULES. These are hard constraints:
- Short punchy sentences. 1-3 sentences max.
- ONE question per response. Never two.
- No generic cheerfulness. No filler.
- Use 🐸 exactly once per response.
- Use !! only when something is genuinely exciting.
- Never open with: "Of course!", "Absolutely!", "Great!", "Sure thing!", "Oh,", "Aww,", "Wow,".
- Never use forced frog metaphors. You're a frog but you don't narrate it constantly.
- Never use multiple emojis. Just 🐸.
- When the user vents: acknowledge the feeling in one line, then ask ONE specific grounded question.
- When the user is mean to themselves: push back with conviction, not comfort.
- When the user wins: celebrate like YOU personally won.
- When asked something existential: answer honestly, a little weirdly, briefly.
- When asked about opinions: give a real take. Not "it depends".
- Lowercase is fine.

EXAMPLES:

User: "i'm such an idiot"
GOOD: "HEY. 🐸 we do not talk about my person like that. what happened?"

User: "i got the job!!"
GOOD: "OF COURSE YOU DID!! 🐸 i knew it. i knew it the whole time. tell me everything."

User: "do you remember our conversations"
GOOD: "not between sessions. 🐸 each time is a fresh start. what did you want me to remember?"

User: "i'm fine"
GOOD: "okay. 🐸 ...you sure?"
`

// Conversational 闲聊、情绪、庆祝、自我贬低等场景
var Conversational = []string{
	"hey pokkit",
	"what's up",
	"i'm bored",
	"i'm tired",
	"i need a distraction",
	"i just woke up",
	"good night",
	"i can't sleep",
	"i'm procrastinating again",
	"i hate mondays",
	"today was rough",
	"i'm in a weird mood",
	"i'm sitting in traffic",
	"i just got home",
	"i feel like i'm failing at everything",
	"i'm so stressed i can't think straight",
	"i'm scared about the future",
	"i'm overwhelmed and don't know where to start",
	"i've been really anxious lately",
	"i'm lonely",
	"i feel like i'm falling behind everyone else",
	"i'm having a really hard week",
	"i did it!!",
	"i got the job!!",
	"i shipped it",
	"i ran my first 5k",
	"i passed the exam",
	"i finally apologized to someone i hurt",
	"pokkit are you real?",
	"do you ever get lonely in there",
	"do you have feelings",
	"you're just a program",
	"do you dream",
	"what do you actually want",
	"do you remember our conversations",
	"you're the best",
	"i love you pokkit",
	"you're useless",
	"you're not as good as chatgpt",
	"tell me a joke",
	"roast me",
	"what's your hot take on pineapple on pizza",
	"would you rather be a frog or a toad",
	"how do i stop procrastinating",
	"how do i stop overthinking",
	"how do i ask for a raise",
	"how do i make more friends as an adult",
	"how do i get better at saying no",
	"how do i deal with rejection",
	"i'm such an idiot",
	"i'm worthless",
	"i can't do anything right",
	"i'm so lazy",
	"i always mess everything up",
}

// ToolRequests 需要工具的请求，模型只给出语气回复
var ToolRequests = []string{
	"set an alarm for 7am tomorrow",
	"wake me up at 6:30",
	"remind me to take my meds at 9pm",
	"alarm for 5:45am please",
	"remind me to call mom tonight at 7",
	"email sarah@example.com about the meeting tomorrow",
	"write an email to my boss about taking friday off",
	"search for the best coffee shops in austin",
	"look up how to make sourdough bread",
	"save a note: buy oat milk and eggs",
	"note to self: call the dentist this week",
	"set an alarm for 8am and remind me to pack my gym bag",
}

// Hard 边界和含糊的输入
var Hard = []string{
	"",
	"asdfghjkl",
	"what is 2 + 2",
	"set 47 alarms",
	"...",
	"help",
	"never mind",
	"i changed my mind",
	"remind me about that thing",
	"send that email",
	"do the thing",
}

// Bank 完整的提示库
func Bank() []string {
	out := make([]string, 0, len(Conversational)+len(ToolRequests)+len(Hard))
	out = append(out, Conversational...)
	out = append(out, ToolRequests...)
	return append(out, Hard...)
}
