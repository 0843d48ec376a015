package tools

// 工具名常量，生成器和校验器共用
const (
	SetAlarm        = "set_alarm"
	ComposeEmail    = "compose_email"
	OpenPhotoEditor = "open_photo_editor"
	WebSearch       = "web_search"
	HTTPFetch       = "http_fetch"
	TakeNote        = "take_note"
	SendWebhook     = "send_webhook"
	WriteClipboard  = "write_clipboard"
	ShowNotify      = "show_notification"
	StoreValue      = "store_value"
	RetrieveValue   = "retrieve_value"
	ScreenRead      = "screen_read"
	ScreenTap       = "screen_tap"
	ScreenType      = "screen_type"
	ScreenScroll    = "screen_scroll"
	ScreenBack      = "screen_back"
	ScreenHome      = "screen_home"
	ScreenFindTap   = "screen_find_and_tap"
)

func object(props map[string]any, required ...string) map[string]any {
	if props == nil {
		props = map[string]any{}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func str(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func integer(desc string, min, max int) map[string]any {
	p := map[string]any{"type": "integer", "description": desc, "minimum": min}
	if max > min {
		p["maximum"] = max
	}
	return p
}

func enum(desc string, values ...string) map[string]any {
	return map[string]any{"type": "string", "description": desc, "enum": values}
}

// Pokkit 返回设备端助手可用的完整工具清单。
// 同一次运行中所有样本共享这份 manifest。
func Pokkit() *ToolRegistry {
	return NewToolRegistry(
		NewSpec(SetAlarm, "Set an alarm or reminder", object(map[string]any{
			"title":  str("What the alarm is for"),
			"hour":   integer("Hour of day, 24h clock", 0, 23),
			"minute": integer("Minute of the hour", 0, 59),
			"day":    enum("Which day the alarm fires", "today", "tomorrow"),
		}, "title", "hour", "minute")),
		NewSpec(ComposeEmail, "Open email composer", object(map[string]any{
			"to":      str("Recipient address, may be empty"),
			"subject": str("Subject line"),
			"body":    str("Email body"),
		}, "subject", "body")),
		NewSpec(OpenPhotoEditor, "Open photo picker for editing", object(map[string]any{
			"instruction": str("What to do to the photo"),
		}, "instruction")),
		NewSpec(WebSearch, "Search the web", object(map[string]any{
			"query": str("Search query"),
		}, "query")),
		NewSpec(HTTPFetch, "HTTP GET request", object(map[string]any{
			"url": str("URL to fetch"),
		}, "url")),
		NewSpec(TakeNote, "Save a note", object(map[string]any{
			"title":   str("Note title"),
			"content": str("Note body"),
		}, "title", "content")),
		NewSpec(SendWebhook, "POST JSON to a webhook URL", object(map[string]any{
			"url":     str("Webhook URL"),
			"payload": str("JSON payload as a string"),
		}, "url", "payload")),
		NewSpec(WriteClipboard, "Write text to clipboard", object(map[string]any{
			"text": str("Text to copy"),
		}, "text")),
		NewSpec(ShowNotify, "Show a push notification", object(map[string]any{
			"title": str("Notification title"),
			"body":  str("Notification body"),
		}, "title", "body")),
		NewSpec(StoreValue, "Store a key-value pair", object(map[string]any{
			"key":   str("Storage key"),
			"value": str("Value to store"),
		}, "key", "value")),
		NewSpec(RetrieveValue, "Retrieve a stored value", object(map[string]any{
			"key": str("Storage key"),
		}, "key")),
		NewSpec(ScreenRead, "Read the visible UI elements on screen", object(nil)),
		NewSpec(ScreenTap, "Tap the screen at a coordinate", object(map[string]any{
			"x": integer("X coordinate in pixels", 0, 0),
			"y": integer("Y coordinate in pixels", 0, 0),
		}, "x", "y")),
		NewSpec(ScreenType, "Type text into the focused field", object(map[string]any{
			"text": str("Text to type"),
		}, "text")),
		NewSpec(ScreenScroll, "Scroll the screen", object(map[string]any{
			"direction": enum("Scroll direction", "up", "down", "left", "right"),
		}, "direction")),
		NewSpec(ScreenBack, "Press the system back button", object(nil)),
		NewSpec(ScreenHome, "Go to the home screen", object(nil)),
		NewSpec(ScreenFindTap, "Find a UI element by text and tap it", object(map[string]any{
			"query": str("Visible text of the element"),
		}, "query")),
	)
}
