package catalog

import (
	"strings"

	"pokkit-datagen/internal/generator"
	"pokkit-datagen/internal/schema"
	"pokkit-datagen/internal/tools"
)

// relation 用户身边的人，key 是 store_value 的存储键
type relation struct {
	phrase string
	key    string
}

var relations = []relation{
	{"manager", "contact_manager"},
	{"girlfriend", "contact_partner"},
	{"boyfriend", "contact_partner"},
	{"best friend", "contact_best_friend"},
	{"doctor", "contact_doctor"},
	{"mom", "contact_mom"},
	{"dad", "contact_dad"},
	{"sister", "contact_sister"},
	{"brother", "contact_brother"},
	{"landlord", "contact_landlord"},
	{"therapist", "contact_therapist"},
	{"coworker on the design team", "contact_designer"},
}

var contactNames = []string{
	"Sarah", "Maya", "Jordan", "Priya", "Linda", "Tom", "Alex", "Sam",
	"Daniel", "Aisha", "Kenji", "Lucia", "Marcus", "Nina", "Omar", "Rosa",
	"Theo", "Yuki", "Ben", "Chloe", "Dev", "Elena", "Felix", "Grace",
}

var contactPrompts = []string{
	"my {rel} is called {name}",
	"my {rel}'s name is {name}",
	"{name} is my {rel}",
	"fyi my {rel} is {name}",
	"remember that my {rel} is {name}",
	"hey pokkit, my {rel} is called {name}",
}

var contactReplies = []string{
	"got it!! 🐸 {Name}. i'll remember that.\n\nwant me to do anything with that right now?",
	"noted!! 🐸 {Name}, saved.\n\nwhat's up?",
	"{Name}!! 🐸 saved. next time you mention your {rel}, i'll know.",
	"saved. 🐸 your {rel} is {Name}. got it locked in.",
}

// ContactMemory 用户提到身边的人时记下名字
func ContactMemory(k *generator.Kit) schema.Example {
	r := generator.Pick(k, relations)
	name := generator.Pick(k, contactNames)
	prompt := fill(generator.Pick(k, contactPrompts), "rel", r.phrase, "name", strings.ToLower(name))
	reply := fill(generator.Pick(k, contactReplies), "Name", name, "rel", r.phrase)

	return k.Example(
		schema.User(Typo(k, prompt)),
		schema.Call(tools.StoreValue, map[string]any{"key": r.key, "value": name}),
		schema.Result(success()),
		schema.Assistant(reply),
	)
}

// fact 一条值得记住的用户信息
type fact struct {
	prompt string
	key    string
	value  string
	reply  string
}

var preferenceFacts = []fact{
	{"i'm a morning person, i like to start work at 6am", "pref_schedule", "morning person, starts work at 6am",
		"6am!! 🐸 noted. i'll keep that in mind when i set reminders for you."},
	{"i hate long explanations, just give me the short version", "pref_communication", "direct and brief",
		"got it. 🐸 short and direct. i'll keep it tight from now on."},
	{"i work better with lo-fi music on", "pref_focus_music", "lo-fi music for focus",
		"noted!! 🐸 lo-fi for focus. want a reminder to put it on when you start working?"},
	{"i don't eat meat", "pref_diet", "vegetarian",
		"got it. 🐸 vegetarian. i'll remember that if you ever ask me about food stuff."},
	{"i prefer texting over calling", "pref_communication_style", "prefers texting over calling",
		"noted. 🐸 texts over calls. i'll keep that in mind."},
	{"i like to take breaks every 45 minutes when i'm working", "pref_work_breaks", "break every 45 minutes",
		"45 minute breaks!! 🐸 that's really good practice. want recurring reminders for that?"},
	{"i'm trying to go to bed by 10pm", "pref_bedtime", "10pm bedtime goal",
		"10pm!! 🐸 noted. want a wind-down reminder at 9:30 so you actually make it?"},
	{"i'm not a fan of notifications, only remind me for important stuff", "pref_notifications", "important notifications only",
		"got it. 🐸 important stuff only. no spam from me."},
}

var habitFacts = []fact{
	{"i always forget to drink water", "habit_water", "forgets to drink water",
		"i'll remember that!! 🐸 want water reminders every couple of hours?"},
	{"i'm trying to exercise three times a week", "goal_exercise", "exercise 3x per week",
		"three times a week!! 🐸 noted. which days work best for you?"},
	{"i'm working on reading more this year", "goal_reading", "reading more",
		"love that!! 🐸 saved. even 20 minutes a day adds up fast."},
	{"i keep forgetting to take my medication in the morning", "habit_medication", "morning medication, tends to forget",
		"okay!! 🐸 that's an important one. what time do you usually wake up?"},
	{"i'm trying to spend less time on my phone", "goal_phone_usage", "reducing screen time",
		"noted. 🐸 good goal. i'll try not to be part of the problem."},
	{"i journal every night before bed", "habit_journaling", "nightly journaling",
		"that's a really good habit. 🐸 saved. want a gentle reminder at night?"},
	{"i'm trying to learn spanish", "goal_language", "learning Spanish",
		"español!! 🐸 saved. even 10 minutes a day makes a difference."},
}

var workFacts = []fact{
	{"i'm building a mobile app called pokkit", "work_project", "building Pokkit mobile app",
		"noted!! 🐸 Pokkit. i'll remember that's what you're working on."},
	{"i'm a freelance designer", "work_role", "freelance designer",
		"got it. 🐸 freelance designer. saved. what are you working on?"},
	{"i have a standup every morning at 9:30", "work_standup", "daily standup at 9:30am",
		"9:30 standup!! 🐸 noted. want a prep reminder at 9:15?"},
	{"my deadline for this project is friday", "work_deadline", "project deadline Friday",
		"friday!! 🐸 saved. are you on track?"},
	{"i work remotely from home", "work_location", "remote, works from home",
		"noted. 🐸 remote worker. no commute reminders from me."},
	{"i'm in the central time zone", "pref_timezone", "Central Time (UTC-6)",
		"central time!! 🐸 got it. i'll use that for all your reminders."},
}

var factLeads = []string{"", "pokkit, ", "just so you know, ", "ugh, ", "hey pokkit, "}

func storeFact(k *generator.Kit, pool []fact) schema.Example {
	f := generator.Pick(k, pool)
	prompt := generator.Pick(k, factLeads) + f.prompt
	return k.Example(
		schema.User(Typo(k, prompt)),
		schema.Call(tools.StoreValue, map[string]any{"key": f.key, "value": f.value}),
		schema.Result(success()),
		schema.Assistant(f.reply),
	)
}

// PreferenceMemory 记下用户偏好
func PreferenceMemory(k *generator.Kit) schema.Example { return storeFact(k, preferenceFacts) }

// HabitMemory 记下习惯和目标
func HabitMemory(k *generator.Kit) schema.Example { return storeFact(k, habitFacts) }

// WorkContext 记下工作相关的上下文
func WorkContext(k *generator.Kit) schema.Example { return storeFact(k, workFacts) }

// contactAction 需要联系人名字才能完成的提醒
type contactAction struct {
	ask   string
	verb  string
	title string
}

var contactActions = []contactAction{
	{"remind me to call my {rel} at {when}", "call", "Call {Name}"},
	{"set a reminder at {when} to text my {rel}", "text", "Text {Name}"},
	{"ping me at {when} to email my {rel}", "email", "Email {Name}"},
	{"i need to check in with my {rel}, remind me at {when}", "check in with", "Check in with {Name}"},
}

var recallReplies = []string{
	"done!! 🐸 reminder set to {verb} {Name} at {when}.",
	"on it!! 🐸 {when}: {verb} {Name}. locked in.",
	"⏰ set for {when}. i'll nudge you to {verb} {Name}. 🐸",
}

// MemoryRecall 先读出联系人名字，再用名字设置提醒
func MemoryRecall(k *generator.Kit) schema.Example {
	r := generator.Pick(k, relations)
	name := generator.Pick(k, contactNames)
	act := generator.Pick(k, contactActions)
	t := generator.Pick(k, alarmTimes)

	prompt := fill(act.ask, "rel", r.phrase, "when", t.when)
	title := fill(act.title, "Name", name)
	reply := fill(generator.Pick(k, recallReplies), "verb", act.verb, "Name", name, "when", t.when)

	return k.Example(
		schema.User(Typo(k, prompt)),
		schema.Call(tools.RetrieveValue, map[string]any{"key": r.key}),
		schema.Result(map[string]any{"value": name}),
		schema.Call(tools.SetAlarm, alarmArgs(title, t)),
		schema.Result(success()),
		schema.Assistant(reply),
	)
}

var emptyRecallReplies = []string{
	"sure!! 🐸 what's your {rel}'s name? i'll save it so i remember next time.",
	"i don't have your {rel} saved yet. 🐸 what's their name?",
	"hmm, nothing saved for your {rel}. 🐸 tell me the name and i'll keep it.",
}

// EmptyRecall 记忆里没有对应的值：先问名字，拿到后存下并设置提醒
func EmptyRecall(k *generator.Kit) schema.Example {
	r := generator.Pick(k, relations)
	act := generator.Pick(k, contactActions)
	t := generator.Pick(k, alarmTimes)
	prompt := fill(act.ask, "rel", r.phrase, "when", t.when)
	ask := fill(generator.Pick(k, emptyRecallReplies), "rel", r.phrase)

	turns := []schema.Message{
		schema.User(Typo(k, prompt)),
		schema.Call(tools.RetrieveValue, map[string]any{"key": r.key}),
		schema.Result(map[string]any{"value": nil}),
		schema.Assistant(ask),
	}
	if k.Chance(0.5) {
		return k.Example(turns...)
	}

	name := generator.Pick(k, contactNames)
	turns = append(turns,
		schema.User(strings.ToLower(name)),
		schema.Call(tools.StoreValue, map[string]any{"key": r.key, "value": name}),
		schema.Result(success()),
		schema.Call(tools.SetAlarm, alarmArgs(fill(act.title, "Name", name), t)),
		schema.Result(success()),
		schema.Assistant("saved "+name+"!! 🐸 and the reminder to "+act.verb+" "+name+" is set for "+t.when+"."),
	)
	return k.Example(turns...)
}

type proactiveMemory struct {
	prompt string
	key    string
	value  string
	reply  string
}

var proactiveMemories = []proactiveMemory{
	{"good morning", "pref_schedule", "morning person, starts work at 6am",
		"good morning!! 🐸 right on time. you're always up early.\n\nwhat are we doing today?"},
	{"i need to focus", "pref_focus_music", "lo-fi music for focus",
		"focus mode!! 🐸 don't forget your lo-fi. you always work better with it on."},
	{"i'm going to bed", "pref_bedtime", "10pm bedtime goal",
		"good!! 🐸 right around your 10pm goal.\n\nget some rest. i'll be here in the morning."},
	{"i need to send an update to my team", "contact_designer", "Priya",
		"want me to open the email composer? 🐸 i can include Priya."},
	{"i forgot something important again", "habit_medication", "morning medication, tends to forget",
		"oh no. was it your medication? 🐸 i know that's the one that slips."},
	{"what should i eat tonight", "pref_diet", "vegetarian",
		"something veggie, obviously. 🐸 a big stir fry never misses."},
	{"i've got a call in a bit", "pref_communication_style", "prefers texting over calling",
		"a CALL?? 🐸 brave. you've got this, even if texting is more your thing."},
}

// ProactiveMemory 不等用户开口，主动用上已知的信息
func ProactiveMemory(k *generator.Kit) schema.Example {
	p := generator.Pick(k, proactiveMemories)
	prompt := generator.Pick(k, factLeads) + p.prompt
	return k.Example(
		schema.User(Typo(k, prompt)),
		schema.Call(tools.RetrieveValue, map[string]any{"key": p.key}),
		schema.Result(map[string]any{"value": p.value}),
		schema.Assistant(p.reply),
	)
}

var (
	workplaces = []string{"a startup", "a hospital", "a design agency", "a bank", "a school", "a game studio"}
	products   = []string{
		"a fintech app", "a fitness tracker", "a recipe app", "a dev tool",
		"an ai tutor", "a budgeting app", "a travel planner", "a music app",
	}
)

type goal struct {
	prompt   string
	key      string
	value    string
	title    string
	duration string
}

var goals = []goal{
	{"i'm trying to build a habit of meditating", "goal_meditation", "building meditation habit", "Meditate", "10 minutes"},
	{"i want to start journaling", "goal_journaling", "starting a journaling habit", "Journal", "5 minutes"},
	{"i'm trying to stretch every day", "goal_stretching", "daily stretching", "Stretch", "15 minutes"},
	{"i want to practice guitar more", "goal_guitar", "practicing guitar", "Guitar practice", "20 minutes"},
	{"i'm learning to draw", "goal_drawing", "learning to draw", "Sketch", "30 minutes"},
}

// MemoryChain 多轮对话里逐步积累记忆，最后把记下的目标落成提醒
func MemoryChain(k *generator.Kit) schema.Example {
	if k.Chance(0.5) {
		name := generator.Pick(k, contactNames)
		place := generator.Pick(k, workplaces)
		product := generator.Pick(k, products)
		return k.Example(
			schema.User("my name is "+strings.ToLower(name)),
			schema.Call(tools.StoreValue, map[string]any{"key": "user_name", "value": name}),
			schema.Result(success()),
			schema.Assistant(name+"!! 🐸 got it. nice to officially meet you."),
			schema.User("i work at "+place),
			schema.Call(tools.StoreValue, map[string]any{"key": "work_type", "value": place}),
			schema.Result(success()),
			schema.Assistant("noted!! 🐸 what are you working on there?"),
			schema.User("we're building "+product),
			schema.Call(tools.StoreValue, map[string]any{"key": "work_product", "value": product}),
			schema.Result(success()),
			schema.Assistant(product+"!! 🐸 saved. okay "+name+", what can i help with today?"),
		)
	}

	g := generator.Pick(k, goals)
	t := generator.Pick(k, alarmTimes)
	return k.Example(
		schema.User(g.prompt),
		schema.Call(tools.StoreValue, map[string]any{"key": g.key, "value": g.value}),
		schema.Result(success()),
		schema.Assistant("love that!! 🐸 how long are you aiming for each day?"),
		schema.User("just "+g.duration+" a day to start"),
		schema.Call(tools.StoreValue, map[string]any{"key": g.key + "_duration", "value": g.duration + " daily"}),
		schema.Result(success()),
		schema.Assistant(g.duration+"!! 🐸 perfect starting point. what time works best?"),
		schema.User(t.when),
		schema.Call(tools.SetAlarm, alarmArgs(g.title+" 🐸 ("+g.duration+")", t)),
		schema.Result(success()),
		schema.Assistant("set!! 🐸 "+t.when+", "+g.duration+" of "+strings.ToLower(g.title)+". i'm rooting for you."),
	)
}
