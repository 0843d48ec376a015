package catalog

import (
	"strings"

	"pokkit-datagen/internal/generator"
	"pokkit-datagen/internal/schema"
	"pokkit-datagen/internal/tools"
)

// fill 用 {name} 占位符渲染模板，kv 为成对的 name, value
func fill(tmpl string, kv ...string) string {
	pairs := make([]string, 0, len(kv))
	for i := 0; i+1 < len(kv); i += 2 {
		pairs = append(pairs, "{"+kv[i]+"}", kv[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

func success() map[string]any {
	return map[string]any{"success": true}
}

func alarmArgs(title string, t alarmTime) map[string]any {
	return map[string]any{
		"title":  title,
		"hour":   t.hour,
		"minute": t.minute,
		"day":    t.day,
	}
}

// Alarm 设置闹钟/提醒
func Alarm(k *generator.Kit) schema.Example {
	verb := generator.Pick(k, alarmVerbs)
	t := generator.Pick(k, alarmTimes)
	task := generator.Pick(k, alarmTasks)

	patterns := []string{
		verb + " " + t.phrase + " to " + task.phrase,
		verb + " to " + task.phrase + " " + t.phrase,
		"I need to " + task.phrase + " " + t.phrase + ", can you remind me?",
		"Don't let me forget to " + task.phrase + " " + t.phrase,
		"Remind me about " + task.phrase + " " + t.phrase,
		"Can you " + strings.ToLower(verb) + " " + t.phrase + " for " + task.phrase + "?",
		"Please " + strings.ToLower(verb) + " " + t.phrase + ", " + task.phrase,
	}
	prompt := Typo(k, generator.Pick(k, patterns))
	reply := fill(generator.Pick(k, alarmReplies), "title", task.title, "when", t.when, "task", task.phrase)

	return k.Example(
		schema.User(prompt),
		schema.Call(tools.SetAlarm, alarmArgs(task.title, t)),
		schema.Result(success()),
		schema.Assistant(reply),
	)
}

func emailArgs(r emailRecipient, t emailTopic) map[string]any {
	return map[string]any{"to": r.to, "subject": t.subject, "body": t.body}
}

// Email 起草邮件
func Email(k *generator.Kit) schema.Example {
	verb := generator.Pick(k, emailVerbs)
	r := generator.Pick(k, emailRecipients)
	t := generator.Pick(k, emailTopics)

	patterns := []string{
		verb + " " + r.phrase + " about " + t.phrase,
		"Help me email " + r.phrase + " about " + t.phrase,
		"Write an email to " + r.phrase + " regarding " + t.phrase,
		"I need to email " + r.phrase + " about " + t.phrase,
		"Can you email " + r.phrase + " about " + t.phrase + "?",
	}
	prompt := Typo(k, generator.Pick(k, patterns))
	reply := fill(generator.Pick(k, emailReplies), "name", r.name)

	return k.Example(
		schema.User(prompt),
		schema.Call(tools.ComposeEmail, emailArgs(r, t)),
		schema.Result(success()),
		schema.Assistant(reply),
	)
}

func searchResult(query string) map[string]any {
	return map[string]any{"success": true, "results": "Top results for: " + query}
}

// Search 网页搜索
func Search(k *generator.Kit) schema.Example {
	verb := generator.Pick(k, searchVerbs)
	s := generator.Pick(k, searchTopics)

	patterns := []string{
		verb + " " + s.topic,
		"Can you search for " + s.topic + "?",
		"I need to know about " + s.topic,
		"Look up " + s.topic + " for me",
		"Search the web for " + s.topic,
		"Find information about " + s.topic,
	}
	prompt := Typo(k, generator.Pick(k, patterns))

	return k.Example(
		schema.User(prompt),
		schema.Call(tools.WebSearch, map[string]any{"query": s.query}),
		schema.Result(searchResult(s.query)),
		schema.Assistant(s.reply),
	)
}

func noteArgs(n noteItem) map[string]any {
	return map[string]any{"title": n.title, "content": n.content}
}

// Note 保存笔记
func Note(k *generator.Kit) schema.Example {
	n := generator.Pick(k, noteItems)
	verb := generator.Pick(k, noteVerbs)

	patterns := []string{
		verb + " " + n.phrase,
		"Save a note about my " + n.phrase,
		"Jot down my " + n.phrase,
		"Keep track of my " + n.phrase,
		"Note to self: " + n.phrase,
		"Can you save my " + n.phrase + "?",
	}
	prompt := Typo(k, generator.Pick(k, patterns))

	return k.Example(
		schema.User(prompt),
		schema.Call(tools.TakeNote, noteArgs(n)),
		schema.Result(success()),
		schema.Assistant(n.reply),
	)
}

// Photo 打开图片编辑器
func Photo(k *generator.Kit) schema.Example {
	p := generator.Pick(k, photoCases)

	patterns := []string{
		"Can you " + p.phrase + "?",
		"I want to " + p.phrase,
		"Help me " + p.phrase,
		"Open the photo editor to " + p.phrase,
		"I need to " + p.phrase,
	}
	prompt := Typo(k, generator.Pick(k, patterns))

	return k.Example(
		schema.User(prompt),
		schema.Call(tools.OpenPhotoEditor, map[string]any{"instruction": p.instruction}),
		schema.Result(success()),
		schema.Assistant(p.reply),
	)
}

// Webhook 触发 webhook
func Webhook(k *generator.Kit) schema.Example {
	w := generator.Pick(k, webhookCases)
	prompt := Typo(k, generator.Pick(k, webhookPrompts))

	return k.Example(
		schema.User(prompt),
		schema.Call(tools.SendWebhook, map[string]any{"url": w.url, "payload": w.payload}),
		schema.Result(map[string]any{"success": true, "status": 200}),
		schema.Assistant(w.reply),
	)
}

// Clipboard 写剪贴板
func Clipboard(k *generator.Kit) schema.Example {
	c := generator.Pick(k, clipboardCases)
	verb := generator.Pick(k, clipboardVerbs)

	patterns := []string{
		verb + " " + c.phrase,
		"Copy " + c.phrase + " to my clipboard",
		"Put " + c.phrase + " on the clipboard",
		"I need " + c.phrase + " on my clipboard",
		"Can you copy " + c.phrase + "?",
	}
	prompt := Typo(k, generator.Pick(k, patterns))

	return k.Example(
		schema.User(prompt),
		schema.Call(tools.WriteClipboard, map[string]any{"text": c.text}),
		schema.Result(success()),
		schema.Assistant(c.reply),
	)
}

// Notification 推送通知
func Notification(k *generator.Kit) schema.Example {
	n := generator.Pick(k, notificationCases)
	body := strings.TrimRight(strings.ToLower(n.body), "!")
	prompt := Typo(k, fill(generator.Pick(k, notificationPrompts), "body", body))

	return k.Example(
		schema.User(prompt),
		schema.Call(tools.ShowNotify, map[string]any{"title": n.title, "body": n.body}),
		schema.Result(success()),
		schema.Assistant(n.reply),
	)
}

func spokenKey(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

// Store 保存键值
func Store(k *generator.Kit) schema.Example {
	s := generator.Pick(k, storeCases)
	prompt := Typo(k, fill(generator.Pick(k, storePrompts), "key", spokenKey(s.key), "value", s.value))

	return k.Example(
		schema.User(prompt),
		schema.Call(tools.StoreValue, map[string]any{"key": s.key, "value": s.value}),
		schema.Result(success()),
		schema.Assistant(s.reply),
	)
}
