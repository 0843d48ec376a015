package catalog

import "pokkit-datagen/internal/generator"

// Entries 默认生成器及其权重
func Entries() []generator.Entry {
	return []generator.Entry{
		// 单工具任务
		{Name: "alarm", Weight: 10, Fn: Alarm},
		{Name: "email", Weight: 6, Fn: Email},
		{Name: "search", Weight: 8, Fn: Search},
		{Name: "note", Weight: 7, Fn: Note},
		{Name: "photo", Weight: 2, Fn: Photo},
		{Name: "webhook", Weight: 1, Fn: Webhook},
		{Name: "clipboard", Weight: 2, Fn: Clipboard},
		{Name: "notification", Weight: 1, Fn: Notification},
		{Name: "store", Weight: 1, Fn: Store},

		// 多步
		{Name: "store_retrieve", Weight: 2, Fn: StoreRetrieve},
		{Name: "multi_tool", Weight: 6, Fn: MultiTool},
		{Name: "conversation", Weight: 4, Fn: Conversation},
		{Name: "ambiguous", Weight: 6, Fn: Ambiguous},
		{Name: "proactive", Weight: 6, Fn: Proactive},

		// 记忆
		{Name: "contact_memory", Weight: 6, Fn: ContactMemory},
		{Name: "preference_memory", Weight: 4, Fn: PreferenceMemory},
		{Name: "habit_memory", Weight: 4, Fn: HabitMemory},
		{Name: "work_context", Weight: 3, Fn: WorkContext},
		{Name: "memory_recall", Weight: 8, Fn: MemoryRecall},
		{Name: "empty_recall", Weight: 4, Fn: EmptyRecall},
		{Name: "proactive_memory", Weight: 3, Fn: ProactiveMemory},
		{Name: "memory_chain", Weight: 5, Fn: MemoryChain},

		// 观点与研究
		{Name: "reasoning", Weight: 4, Fn: Reasoning},
		{Name: "research", Weight: 6, Fn: Research},
		{Name: "code", Weight: 4, Fn: Code},

		// 屏幕控制
		{Name: "screen_find_tap", Weight: 6, Fn: ScreenFindTap},
		{Name: "screen_read_tap", Weight: 4, Fn: ScreenReadTap},
		{Name: "screen_type", Weight: 4, Fn: ScreenType},
		{Name: "screen_scroll", Weight: 2, Fn: ScreenScroll},
		{Name: "screen_navigate", Weight: 2, Fn: ScreenNavigate},
		{Name: "screen_multi", Weight: 4, Fn: ScreenMulti},

		// 人格与困难样本
		{Name: "failure", Weight: 3, Fn: Failure},
		{Name: "emotional_task", Weight: 6, Fn: EmotionalTask},
		{Name: "support", Weight: 6, Fn: Support},
		{Name: "sage", Weight: 3, Fn: SageMode},
		{Name: "rival", Weight: 3, Fn: RivalMode},
		{Name: "refusal", Weight: 2, Fn: Refusal},
	}
}

// Default 返回默认注册表
func Default() *generator.Registry {
	return generator.MustRegistry(Entries()...)
}
