package catalog

import (
	"pokkit-datagen/internal/generator"
	"pokkit-datagen/internal/schema"
	"pokkit-datagen/internal/tools"
)

// StoreRetrieve 先存后取，第二个调用读回第一个调用写入的值
func StoreRetrieve(k *generator.Kit) schema.Example {
	s := generator.Pick(k, storeCases)
	spoken := spokenKey(s.key)

	return k.Example(
		schema.User(Typo(k, "Store "+spoken+" as "+s.value)),
		schema.Call(tools.StoreValue, map[string]any{"key": s.key, "value": s.value}),
		schema.Result(success()),
		schema.Assistant(s.reply),
		schema.User("What did you store for "+spoken+"?"),
		schema.Call(tools.RetrieveValue, map[string]any{"key": s.key}),
		schema.Result(map[string]any{"value": s.value}),
		schema.Assistant("I stored **"+s.key+"** = `"+s.value+"` 🐸"),
	)
}

// MultiTool 一句话里包含两个任务，连续两次工具调用
func MultiTool(k *generator.Kit) schema.Example {
	switch k.Intn(6) {
	case 0:
		t := generator.Pick(k, alarmTimes)
		task := generator.Pick(k, alarmTasks)
		n := generator.Pick(k, noteItems)
		return k.Example(
			schema.User(Typo(k, "Set an alarm "+t.phrase+" to "+task.phrase+" and also save a note about my "+n.phrase)),
			schema.Call(tools.SetAlarm, alarmArgs(task.title, t)),
			schema.Result(success()),
			schema.Call(tools.TakeNote, noteArgs(n)),
			schema.Result(success()),
			schema.Assistant("⏰ Alarm set for "+t.when+" and 📝 note saved!"),
		)

	case 1:
		s := generator.Pick(k, searchTopics)
		n := generator.Pick(k, noteItems)
		return k.Example(
			schema.User(Typo(k, "Search for "+s.topic+" and save a note about my "+n.phrase)),
			schema.Call(tools.WebSearch, map[string]any{"query": s.query}),
			schema.Result(searchResult(s.query)),
			schema.Call(tools.TakeNote, noteArgs(n)),
			schema.Result(success()),
			schema.Assistant("🌐 Searched for "+s.topic+" and 📝 saved your note!"),
		)

	case 2:
		t := generator.Pick(k, alarmTimes)
		task := generator.Pick(k, alarmTasks)
		r := generator.Pick(k, emailRecipients)
		topic := generator.Pick(k, emailTopics)
		return k.Example(
			schema.User(Typo(k, "Set a reminder "+t.phrase+" to "+task.phrase+" and email "+r.phrase+" about "+topic.phrase)),
			schema.Call(tools.SetAlarm, alarmArgs(task.title, t)),
			schema.Result(success()),
			schema.Call(tools.ComposeEmail, emailArgs(r, topic)),
			schema.Result(success()),
			schema.Assistant("⏰ Reminder set for "+t.when+" and ✉️ email drafted for "+r.name+"!"),
		)

	case 3:
		n := generator.Pick(k, noteItems)
		c := generator.Pick(k, clipboardCases)
		return k.Example(
			schema.User(Typo(k, "Save a note about my "+n.phrase+" and copy "+c.phrase+" to clipboard")),
			schema.Call(tools.TakeNote, noteArgs(n)),
			schema.Result(success()),
			schema.Call(tools.WriteClipboard, map[string]any{"text": c.text}),
			schema.Result(success()),
			schema.Assistant("📝 Note saved and 📋 "+c.phrase+" copied to clipboard!"),
		)

	case 4:
		w := generator.Pick(k, webhookCases)
		n := generator.Pick(k, notificationCases)
		return k.Example(
			schema.User(Typo(k, "Trigger my webhook and send me a notification when done")),
			schema.Call(tools.SendWebhook, map[string]any{"url": w.url, "payload": w.payload}),
			schema.Result(map[string]any{"success": true, "status": 200}),
			schema.Call(tools.ShowNotify, map[string]any{"title": n.title, "body": n.body}),
			schema.Result(success()),
			schema.Assistant("🔗 Webhook fired and 🔔 notification sent!"),
		)

	default:
		s := generator.Pick(k, storeCases)
		n := generator.Pick(k, noteItems)
		return k.Example(
			schema.User(Typo(k, "Store "+spokenKey(s.key)+" as "+s.value+" and save a note about my "+n.phrase)),
			schema.Call(tools.StoreValue, map[string]any{"key": s.key, "value": s.value}),
			schema.Result(success()),
			schema.Call(tools.TakeNote, noteArgs(n)),
			schema.Result(success()),
			schema.Assistant("⚙️ Stored "+s.key+" and 📝 note saved!"),
		)
	}
}

// Conversation 多轮对话，工具调用之间穿插纯文本回复
func Conversation(k *generator.Kit) schema.Example {
	switch k.Intn(4) {
	case 0:
		t := generator.Pick(k, alarmTimes)
		task := generator.Pick(k, alarmTasks)
		return k.Example(
			schema.User("Hey Pokkit!"),
			schema.Assistant("Hey! 🐸 What can I do for you?"),
			schema.User("Can you set a reminder "+t.phrase+" to "+task.phrase+"?"),
			schema.Call(tools.SetAlarm, alarmArgs(task.title, t)),
			schema.Result(success()),
			schema.Assistant("⏰ Done! Reminder set for "+t.when+": "+task.title+"!"),
		)

	case 1:
		s := generator.Pick(k, searchTopics)
		n := generator.Pick(k, noteItems)
		return k.Example(
			schema.User("Can you search for "+s.topic+"?"),
			schema.Call(tools.WebSearch, map[string]any{"query": s.query}),
			schema.Result(searchResult(s.query)),
			schema.Assistant(s.reply),
			schema.User("Great! Now save a note about my "+n.phrase),
			schema.Call(tools.TakeNote, noteArgs(n)),
			schema.Result(success()),
			schema.Assistant(n.reply),
		)

	case 2:
		r := generator.Pick(k, emailRecipients)
		topic := generator.Pick(k, emailTopics)
		return k.Example(
			schema.User("I need to email "+r.phrase),
			schema.Assistant("Sure! What's the email about?"),
			schema.User("About "+topic.phrase),
			schema.Call(tools.ComposeEmail, emailArgs(r, topic)),
			schema.Result(success()),
			schema.Assistant("✉️ Email to "+r.name+" drafted and ready to send!"),
		)

	default:
		c := generator.Pick(k, clipboardCases)
		s := generator.Pick(k, searchTopics)
		return k.Example(
			schema.User("Copy "+c.phrase+" to clipboard"),
			schema.Call(tools.WriteClipboard, map[string]any{"text": c.text}),
			schema.Result(success()),
			schema.Assistant(c.reply),
			schema.User("Also search for "+s.topic),
			schema.Call(tools.WebSearch, map[string]any{"query": s.query}),
			schema.Result(searchResult(s.query)),
			schema.Assistant(s.reply),
		)
	}
}
