package catalog

import (
	"pokkit-datagen/internal/generator"
	"pokkit-datagen/internal/schema"
	"pokkit-datagen/internal/tools"
)

type findTap struct {
	instruction string
	query       string
	reply       string
}

var findTapCases = []findTap{
	{"open Settings", "Settings", "opened settings! 🐸"},
	{"open Chrome", "Chrome", "chrome's up! 🐸"},
	{"open the camera", "Camera", "say cheese! 🐸 camera's open."},
	{"open YouTube", "YouTube", "youtube's open! 🐸 what are we watching?"},
	{"open Spotify", "Spotify", "spotify loaded! 🐸 time for tunes."},
	{"tap the search bar", "Search", "search bar focused! 🐸 type away."},
	{"open Messages", "Messages", "messages open! 🐸"},
	{"open Gmail", "Gmail", "gmail open! 🐸 let's check those emails."},
	{"open Google Maps", "Maps", "maps loaded! 🐸 where we going?"},
	{"tap the Wi-Fi toggle", "Wi-Fi", "toggled Wi-Fi! 🐸"},
}

// element 屏幕上的一个 UI 元素，字段名与 screen_read 的返回一致
type element struct {
	Text      string `json:"text"`
	CenterX   int    `json:"center_x"`
	CenterY   int    `json:"center_y"`
	Clickable bool   `json:"clickable"`
	Editable  bool   `json:"editable,omitempty"`
}

var screens = [][]element{
	{{"Settings", 540, 200, true, false}, {"Chrome", 540, 350, true, false}, {"Messages", 540, 500, true, false}},
	{{"Play", 540, 960, true, false}, {"Next", 900, 960, true, false}, {"Previous", 180, 960, true, false}},
	{{"Submit", 540, 1600, true, false}, {"Cancel", 540, 1700, true, false}, {"Name", 540, 800, true, true}},
	{{"Accept", 350, 1200, true, false}, {"Decline", 730, 1200, true, false}},
}

type typeCase struct {
	instruction string
	text        string
	field       string
	reply       string
}

var typeCases = []typeCase{
	{"search for cute frogs", "cute frogs", "search bar", "searching for cute frogs! 🐸 great taste."},
	{"type hello world", "hello world", "text field", "typed it! 🐸"},
	{"search for the nearest pizza", "nearest pizza", "search", "pizza search incoming! 🐸"},
	{"type a message saying I'll be late", "I'll be late, sorry!", "message field", "typed it out! 🐸 honest and to the point."},
	{"enter my email address", "user@example.com", "email field", "email entered! 🐸"},
}

var directions = []string{"up", "down", "left", "right"}

func tapped(query string) map[string]any {
	return map[string]any{"success": true, "element": query, "tapped": true}
}

// ScreenFindTap 按文字查找元素并点击
func ScreenFindTap(k *generator.Kit) schema.Example {
	c := generator.Pick(k, findTapCases)
	patterns := []string{
		"Can you " + c.instruction + "?",
		c.instruction + " for me",
		"Hey pokkit, " + c.instruction,
		"I need you to " + c.instruction,
	}

	return k.Example(
		schema.User(Typo(k, generator.Pick(k, patterns))),
		schema.Call(tools.ScreenFindTap, map[string]any{"query": c.query}),
		schema.Result(tapped(c.query)),
		schema.Assistant(c.reply),
	)
}

// ScreenReadTap 先读屏，再按坐标点击
func ScreenReadTap(k *generator.Kit) schema.Example {
	screen := generator.Pick(k, screens)
	target := generator.Pick(k, screen)

	return k.Example(
		schema.User("What's on my screen? Tap "+target.Text),
		schema.Call(tools.ScreenRead, nil),
		schema.Result(map[string]any{"elements": screen}),
		schema.Assistant("i see the screen! 🐸 tapping "+target.Text+" now."),
		schema.Call(tools.ScreenTap, map[string]any{"x": target.CenterX, "y": target.CenterY}),
		schema.Result(success()),
		schema.Assistant("tapped "+target.Text+"! 🐸"),
	)
}

// ScreenType 读屏、聚焦输入框、输入文字
func ScreenType(k *generator.Kit) schema.Example {
	c := generator.Pick(k, typeCases)
	patterns := []string{
		"Can you " + c.instruction + "?",
		c.instruction,
		"Hey pokkit, " + c.instruction,
	}
	field := element{Text: c.field, CenterX: 540, CenterY: 400, Clickable: true, Editable: true}

	return k.Example(
		schema.User(generator.Pick(k, patterns)),
		schema.Call(tools.ScreenRead, nil),
		schema.Result(map[string]any{"elements": []element{field}}),
		schema.Assistant("i see the "+c.field+". 🐸 typing now."),
		schema.Call(tools.ScreenTap, map[string]any{"x": field.CenterX, "y": field.CenterY}),
		schema.Result(success()),
		schema.Call(tools.ScreenType, map[string]any{"text": c.text}),
		schema.Result(success()),
		schema.Assistant(c.reply),
	)
}

// ScreenScroll 滚动屏幕
func ScreenScroll(k *generator.Kit) schema.Example {
	dir := generator.Pick(k, directions)
	prompts := []string{
		"Scroll " + dir,
		"Can you scroll " + dir + " on my screen?",
		"Swipe " + dir + " for me",
		"Scroll the page " + dir,
	}
	replies := []string{
		"scrolled " + dir + "! 🐸",
		"done! 🐸 scrolled " + dir + ".",
		"swiped " + dir + "! 🐸 want me to keep going?",
	}

	return k.Example(
		schema.User(generator.Pick(k, prompts)),
		schema.Call(tools.ScreenScroll, map[string]any{"direction": dir}),
		schema.Result(success()),
		schema.Assistant(generator.Pick(k, replies)),
	)
}

// ScreenNavigate 返回键 / 主屏幕，偶尔是多步导航
func ScreenNavigate(k *generator.Kit) schema.Example {
	switch k.Intn(3) {
	case 0:
		return k.Example(
			schema.User(generator.Pick(k, []string{"Go back", "Press back", "Back please", "Hit the back button"})),
			schema.Call(tools.ScreenBack, nil),
			schema.Result(success()),
			schema.Assistant("went back! 🐸"),
		)
	case 1:
		return k.Example(
			schema.User(generator.Pick(k, []string{"Go home", "Take me home", "Press the home button", "Go to home screen"})),
			schema.Call(tools.ScreenHome, nil),
			schema.Result(success()),
			schema.Assistant("home screen! 🐸"),
		)
	default:
		return k.Example(
			schema.User("Go back two screens and then go home"),
			schema.Call(tools.ScreenBack, nil),
			schema.Result(success()),
			schema.Call(tools.ScreenBack, nil),
			schema.Result(success()),
			schema.Call(tools.ScreenHome, nil),
			schema.Result(success()),
			schema.Assistant("back back home! 🐸 you're at the home screen now."),
		)
	}
}

// ScreenMulti 多步屏幕自动化
func ScreenMulti(k *generator.Kit) schema.Example {
	if k.Intn(2) == 0 {
		return k.Example(
			schema.User("Open YouTube and search for lo-fi music"),
			schema.Call(tools.ScreenFindTap, map[string]any{"query": "YouTube"}),
			schema.Result(tapped("YouTube")),
			schema.Assistant("youtube's open! 🐸 now let me find the search bar."),
			schema.Call(tools.ScreenFindTap, map[string]any{"query": "Search"}),
			schema.Result(tapped("Search")),
			schema.Call(tools.ScreenType, map[string]any{"text": "lo-fi music"}),
			schema.Result(success()),
			schema.Assistant("searched for lo-fi music! 🐸 chill vibes incoming."),
		)
	}

	return k.Example(
		schema.User("Find the Wi-Fi settings on this page"),
		schema.Call(tools.ScreenRead, nil),
		schema.Result(map[string]any{"elements": []element{
			{Text: "Display", CenterX: 540, CenterY: 300},
			{Text: "Sound", CenterX: 540, CenterY: 450},
		}}),
		schema.Assistant("hmm, i don't see Wi-Fi yet. 🐸 let me scroll down."),
		schema.Call(tools.ScreenScroll, map[string]any{"direction": "down"}),
		schema.Result(success()),
		schema.Call(tools.ScreenRead, nil),
		schema.Result(map[string]any{"elements": []element{
			{Text: "Wi-Fi", CenterX: 540, CenterY: 350, Clickable: true},
			{Text: "Bluetooth", CenterX: 540, CenterY: 500},
		}}),
		schema.Assistant("found it! 🐸 tapping Wi-Fi now."),
		schema.Call(tools.ScreenFindTap, map[string]any{"query": "Wi-Fi"}),
		schema.Result(tapped("Wi-Fi")),
		schema.Assistant("Wi-Fi settings open! 🐸"),
	)
}
