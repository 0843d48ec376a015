package catalog

// alarmTime 用户口中的时间 -> set_alarm 的绝对时间参数
type alarmTime struct {
	phrase string
	hour   int
	minute int
	day    string
	when   string
}

var alarmTimes = []alarmTime{
	{"for 7am tomorrow", 7, 0, "tomorrow", "7am tomorrow"},
	{"for 6:30am", 6, 30, "tomorrow", "6:30am"},
	{"for 8pm tonight", 20, 0, "today", "8pm tonight"},
	{"for 2pm", 14, 0, "today", "2pm"},
	{"for 5:45am", 5, 45, "tomorrow", "5:45am"},
	{"for 10am tomorrow", 10, 0, "tomorrow", "10am tomorrow"},
	{"for 9am", 9, 0, "tomorrow", "9am"},
	{"at midnight", 0, 0, "tomorrow", "midnight"},
	{"at 10:30pm", 22, 30, "today", "10:30pm"},
	{"at 5pm", 17, 0, "today", "5pm"},
	{"for 3pm", 15, 0, "today", "3pm"},
	{"at 4:20", 16, 20, "today", "4:20"},
	{"for 6am tomorrow", 6, 0, "tomorrow", "6am tomorrow"},
	{"at 9pm", 21, 0, "today", "9pm"},
	{"for noon tomorrow", 12, 0, "tomorrow", "noon tomorrow"},
	{"at 7:30am", 7, 30, "tomorrow", "7:30am"},
	{"for 11am", 11, 0, "today", "11am"},
	{"for 8am", 8, 0, "tomorrow", "8am"},
	{"at 1pm", 13, 0, "today", "1pm"},
	{"for 4pm", 16, 0, "today", "4pm"},
	{"at 6:15am", 6, 15, "tomorrow", "6:15am"},
}

type alarmTask struct {
	phrase string
	title  string
}

var alarmTasks = []alarmTask{
	{"take my medication", "Take medication"}, {"go to the gym", "Gym"},
	{"call mom", "Call mom"}, {"attend the standup", "Daily standup"},
	{"drink water", "Drink water"}, {"check the oven", "Check oven"},
	{"go to bed", "Bedtime"}, {"submit the report", "Submit report"},
	{"pay rent", "Pay rent"}, {"do a focus session", "Focus session"},
	{"water the plants", "Water plants"}, {"prepare for my interview", "Interview prep"},
	{"take a break", "Take a break"}, {"back up my phone", "Phone backup"},
	{"call the doctor", "Call doctor"}, {"stretch", "Stretch"},
	{"review the PR", "Review PR"}, {"join the meeting", "Meeting"},
	{"pick up the kids", "Pick up kids"}, {"leave for the airport", "Airport departure"},
	{"take out the trash", "Take out trash"}, {"feed the dog", "Feed dog"},
	{"meditate", "Meditation"}, {"send the invoice", "Send invoice"},
	{"go for a run", "Run"}, {"cook dinner", "Cook dinner"},
	{"do laundry", "Laundry"}, {"journal", "Journal"},
	{"read for 20 minutes", "Reading"}, {"call dad", "Call dad"},
}

var alarmVerbs = []string{
	"Set an alarm", "Set a reminder", "Remind me", "Wake me up", "Alert me", "Ping me", "Schedule a reminder",
}

var alarmReplies = []string{
	"⏰ {title} alarm set for {when}!",
	"✅ Reminder set for {when}: {title}!",
	"Done! ⏰ I'll remind you to {task} at {when}.",
	"🐸 Got it, {title} reminder locked in for {when}!",
	"⏰ {when} alarm set. I've got you covered!",
	"🔔 Reminder created: {title} at {when}!",
}

type noteItem struct {
	phrase  string
	title   string
	content string
	reply   string
}

var noteItems = []noteItem{
	{"shopping list", "Shopping list", "- Milk\n- Eggs\n- Bread\n- Butter\n- Coffee", "📝 Shopping list saved!"},
	{"WiFi password", "WiFi password", "Network: HomeNet\nPassword: SuperSecret123", "📝 WiFi credentials saved!"},
	{"app idea", "App idea", "App that tracks daily water intake with reminders, streaks, and analytics.", "📝 Idea saved! 💡"},
	{"dentist reminder", "Call dentist", "Call dentist Monday morning to schedule a checkup appointment.", "📝 Noted!"},
	{"workout", "Workout log", "- 5km run\n- 20 pushups\n- 10 pullups\n- 15 min stretching", "📝 Workout logged! 🏃"},
	{"meeting notes", "Meeting notes", "Meeting with Sarah at 3pm Thursday.\nAgenda: Q1 roadmap, hiring, OKRs.", "📝 Meeting notes saved!"},
	{"bug report", "Bug report", "Bug: Login button unresponsive on iOS 17+\nPriority: High", "📝 Bug logged!"},
	{"recipe", "Recipe: Aglio e Olio", "Ingredients: pasta, garlic, olive oil, parsley, chili flakes", "📝 Recipe saved! 🍝"},
	{"daily goals", "Daily goals", "1. Finish feature X\n2. Review PRs\n3. 30 min exercise\n4. Read 20 pages", "📝 Daily goals saved!"},
	{"travel checklist", "Travel checklist", "- Passport\n- Charger\n- Headphones\n- Travel adapter", "📝 Travel checklist saved!"},
	{"sprint goals", "Sprint goals", "Sprint 12 goals:\n1. Auth refactor\n2. Push notifications\n3. Dark mode", "📝 Sprint goals saved!"},
	{"expense", "Expense log", "Date: today\nAmount: $47.50\nCategory: Food\nNote: Team lunch", "📝 Expense logged!"},
}

var noteVerbs = []string{"Note:", "Save a note:", "Jot down:", "Remember:", "Log:", "Write down:", "Record:"}

type searchTopic struct {
	topic string
	query string
	reply string
}

var searchTopics = []searchTopic{
	{"the weather today", "current weather today", "🌐 Searching for today's weather..."},
	{"the best pizza near me", "best pizza places near me", "🌐 Searching for pizza near you!"},
	{"the latest AI news", "latest AI news 2026", "🌐 Pulling the latest AI news..."},
	{"cheap flights to Tokyo", "cheap flights to Tokyo 2026", "🌐 Searching for Tokyo flights!"},
	{"Python asyncio documentation", "Python asyncio docs official", "🌐 Searching the Python docs..."},
	{"how to negotiate a salary raise", "how to negotiate salary raise tips", "🌐 Searching salary negotiation tips..."},
	{"how to meditate for beginners", "meditation for beginners guide", "🌐 Searching meditation guides..."},
	{"the calories in an avocado", "calories in one avocado nutrition facts", "🌐 Searching nutrition info..."},
	{"how to write a cover letter", "how to write a cover letter examples 2026", "🌐 Searching cover letter tips..."},
	{"how to get better sleep", "how to improve sleep quality tips science", "🌐 Searching sleep improvement tips..."},
	{"the best books to read", "best books to read 2026 list", "🌐 Searching book recommendations!"},
	{"how to deploy to Kubernetes", "how to deploy app to Kubernetes tutorial", "🌐 Searching Kubernetes guides..."},
	{"the best meal prep ideas", "healthy meal prep ideas for the week", "🌐 Searching meal prep ideas!"},
	{"how to learn to code", "how to learn to code for beginners 2026", "🌐 Searching coding resources..."},
}

var searchVerbs = []string{"Search for", "Look up", "Find", "Google", "Tell me about", "Find me info on", "Can you look up"}

type emailRecipient struct {
	phrase string
	to     string
	name   string
}

var emailRecipients = []emailRecipient{
	{"my boss", "", "Boss"}, {"John", "john@example.com", "John"},
	{"the team", "", "Team"}, {"Sarah", "sarah@company.com", "Sarah"},
	{"my landlord", "", "Landlord"}, {"the client", "client@business.com", "Client"},
	{"HR", "hr@company.com", "HR"}, {"my manager", "manager@company.com", "Manager"},
	{"mom", "", "Mom"}, {"the recruiter", "recruiter@jobs.com", "Recruiter"},
}

type emailTopic struct {
	phrase  string
	subject string
	body    string
}

var emailTopics = []emailTopic{
	{"the project deadline", "Project Deadline Update",
		"Hi,\n\nFollowing up on the project deadline. Let me know if you need more time or resources.\n\nBest,"},
	{"running late today", "Running Late This Morning",
		"Hi,\n\nI'll be running a bit late this morning. I'll be in as soon as possible.\n\nSorry for any inconvenience."},
	{"the outstanding invoice", "Follow-up: Outstanding Invoice",
		"Hi,\n\nFollowing up on the invoice sent last week. Please confirm receipt and the expected payment date.\n\nThank you."},
	{"my vacation request", "Vacation Request",
		"Hi,\n\nI'd like to request vacation from [start date] to [end date]. Please let me know if this works.\n\nThank you."},
	{"the contract renewal", "Contract Renewal Discussion",
		"Hi,\n\nI'd like to discuss renewing our contract for the upcoming year. Are you available for a call this week?\n\nBest,"},
	{"the budget approval", "Budget Approval Request",
		"Hi,\n\nI'm writing to request approval for the Q2 budget outlined in the attached document.\n\nThank you."},
}

var emailVerbs = []string{"Email", "Write an email to", "Send an email to", "Draft an email to", "Compose an email to", "Message"}

var emailReplies = []string{
	"✉️ Email drafted for {name}!",
	"Done! ✉️ Email to {name} is ready to go.",
	"✉️ Draft ready for {name}. Hit send when you're ready!",
	"🐸 Email drafted! Just review and send.",
	"✉️ Got it, {name} email is composed and ready!",
}

type photoCase struct {
	phrase      string
	instruction string
	reply       string
}

var photoCases = []photoCase{
	{"edit a photo", "Edit the photo", "📸 Photo picker open, select your photo!"},
	{"crop a photo", "Crop the photo", "📸 Select the photo to crop!"},
	{"brighten a photo", "Brighten the photo", "📸 Photo picker open, I'll brighten it up!"},
	{"add a filter to a photo", "Apply a filter to the photo", "📸 Select the photo to apply a filter!"},
	{"remove the background from a photo", "Remove background from photo", "📸 Select the photo, I'll remove the background!"},
	{"make a photo black and white", "Convert photo to black and white", "📸 Select the photo to convert!"},
	{"blur the background of a photo", "Blur photo background", "📸 Select the photo, I'll blur the background!"},
	{"sharpen a photo", "Sharpen the photo", "📸 Select the photo to sharpen!"},
}

type clipboardCase struct {
	phrase string
	text   string
	reply  string
}

var clipboardCases = []clipboardCase{
	{"my email address", "user@example.com", "📋 Email copied to clipboard!"},
	{"my phone number", "+1 555-867-5309", "📋 Phone number copied!"},
	{"my home address", "123 Main St, Springfield, IL 62701", "📋 Address copied to clipboard!"},
	{"a code snippet", "const greet = (name) => `Hello, ${name}!`;", "📋 Code snippet copied!"},
	{"a meeting link", "https://meet.google.com/abc-defg-hij", "📋 Meeting link copied!"},
	{"a promo code", "POKKIT20", "📋 Promo code copied!"},
}

var clipboardVerbs = []string{"Copy", "Put on clipboard", "Copy to clipboard", "Save to clipboard", "Clip"}

type notificationCase struct {
	title string
	body  string
	reply string
}

var notificationCases = []notificationCase{
	{"Water break", "Time to drink some water! 💧", "🔔 Notification sent!"},
	{"Focus time", "Put your phone down and focus for 25 minutes. 🎯", "🔔 Notification sent!"},
	{"Stand up", "You've been sitting too long, stand up and stretch! 🧘", "🔔 Notification sent!"},
	{"Workout time", "Time to hit the gym! 💪", "🔔 Notification sent!"},
	{"Bedtime", "Wind down, it's almost bedtime. 🌙", "🔔 Notification sent!"},
	{"Gratitude", "Write down 3 things you're grateful for today. 🙏", "🔔 Notification sent!"},
}

var notificationPrompts = []string{
	"Send me a notification to {body}",
	"Push a notification: {body}",
	"Show a notification saying {body}",
	"Notify me: {body}",
}

type storeCase struct {
	key   string
	value string
	reply string
}

var storeCases = []storeCase{
	{"my_weight", "175", "⚙️ Stored: my_weight = 175"},
	{"daily_goal", "10000 steps", "⚙️ Stored: daily_goal = 10000 steps"},
	{"mood_today", "great", "⚙️ Stored: mood_today = great"},
	{"current_book", "Atomic Habits", "⚙️ Stored: current_book = Atomic Habits"},
	{"water_intake", "2.5L", "⚙️ Stored: water_intake = 2.5L"},
	{"streak", "14", "⚙️ Stored: streak = 14 days!"},
	{"project_name", "Pokkit v2", "⚙️ Stored: project_name = Pokkit v2"},
	{"budget", "$500", "⚙️ Stored: budget = $500"},
}

var storePrompts = []string{
	"Store {key} as {value}",
	"Save {key} = {value}",
	"Remember that {key} is {value}",
	"Set {key} to {value}",
}

type webhookCase struct {
	url     string
	payload string
	reply   string
}

var webhookCases = []webhookCase{
	{"https://hooks.zapier.com/hooks/catch/123/abc", `{"event":"pokkit_trigger","message":"Hello from Pokkit!"}`, "🔗 Webhook fired to Zapier!"},
	{"https://discord.com/api/webhooks/123/abc", `{"content":"Pokkit notification: task complete!"}`, "🔗 Discord webhook sent!"},
	{"https://hooks.slack.com/services/T00/B00/abc", `{"text":"Pokkit: reminder triggered!"}`, "🔗 Slack webhook fired!"},
	{"https://n8n.myserver.com/webhook/pokkit", `{"trigger":"manual","timestamp":"now"}`, "🔗 n8n workflow triggered!"},
}

var webhookPrompts = []string{
	"Fire my Zapier webhook",
	"Trigger my Discord webhook",
	"Send a webhook to Slack",
	"Hit my webhook endpoint",
	"Trigger my n8n workflow via webhook",
	"Send a POST to my webhook",
}
