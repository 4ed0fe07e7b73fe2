package catalog

import "github.com/veya/veya-api/internal/models"

// The default catalog applied at bootstrap. One entry per category with its
// screen metadata, selectable items and form-field definitions; categories
// seed through the same UpsertCategory contract as any admin edit.

func defaultCategories() []models.TemplateCategory {
	return []models.TemplateCategory{
		{
			Category:       "basic",
			ViewOrder:      1,
			ScreenKey:      "basic",
			ScreenTitle:    "Personalize Your Journey",
			ScreenSubtitle: "Tell us a bit about you",
			ScreenType:     "form",
			ScreenIcon:     "👤",
			Templates:      models.TemplateItems{},
			Fields:         basicFields(),
		},
		{
			Category:       "lifestyle",
			ViewOrder:      2,
			ScreenKey:      "lifestyle",
			ScreenTitle:    "Lifestyle & Routine",
			ScreenSubtitle: "This helps us schedule sessions at the right times",
			ScreenType:     "form",
			ScreenIcon:     "⏰",
			Templates:      models.TemplateItems{},
			Fields:         lifestyleFields(),
		},
		{
			Category:       "goals",
			ViewOrder:      3,
			ScreenKey:      "goals",
			ScreenTitle:    "Personalize Your Journey",
			ScreenSubtitle: "What brings you here today?",
			ScreenType:     "multi",
			ScreenIcon:     "🎯",
			Templates: models.TemplateItems{
				{Code: "reduce_stress", Label: "Reduce stress", Emoji: "🌿", DisplayOrder: 1, IsActive: true},
				{Code: "sleep_better", Label: "Sleep better", Emoji: "😴", DisplayOrder: 2, IsActive: true},
				{Code: "improve_focus", Label: "Improve focus", Emoji: "🎯", DisplayOrder: 3, IsActive: true},
				{Code: "manage_emotions", Label: "Manage emotions", Emoji: "💞", DisplayOrder: 4, IsActive: true},
			},
			Fields: models.FieldDocs{multiSelectField("goals", "Select your goals", "goals", true, 1)},
		},
		{
			Category:       "challenges",
			ViewOrder:      4,
			ScreenKey:      "challenges",
			ScreenTitle:    "Personalize Your Journey",
			ScreenSubtitle: "Which challenges do you face most often?",
			ScreenType:     "multi",
			ScreenIcon:     "💪",
			Templates: models.TemplateItems{
				{Code: "overthinking", Label: "Overthinking", Emoji: "🤯", DisplayOrder: 1, IsActive: true},
				{Code: "burnout", Label: "Burnout", Emoji: "🔥", DisplayOrder: 2, IsActive: true},
				{Code: "fatigue", Label: "Fatigue", Emoji: "🥱", DisplayOrder: 3, IsActive: true},
				{Code: "insomnia", Label: "Insomnia", Emoji: "🌙", DisplayOrder: 4, IsActive: true},
				{Code: "low_motivation", Label: "Low motivation", Emoji: "🪫", DisplayOrder: 5, IsActive: true},
				{Code: "loneliness", Label: "Loneliness", Emoji: "🫥", DisplayOrder: 6, IsActive: true},
				{Code: "relationship_stress", Label: "Relationship stress", Emoji: "💔", DisplayOrder: 7, IsActive: true},
				{Code: "anxiety", Label: "Anxiety", Emoji: "😟", DisplayOrder: 8, IsActive: true},
			},
			Fields: models.FieldDocs{multiSelectField("challenges", "Select your challenges", "challenges", true, 1)},
		},
		{
			Category:       "practices",
			ViewOrder:      5,
			ScreenKey:      "practice",
			ScreenTitle:    "Personalize Your Journey",
			ScreenSubtitle: "What type of practice do you enjoy?",
			ScreenType:     "multi",
			ScreenIcon:     "🧘",
			Templates: models.TemplateItems{
				{Code: "breathing", Label: "Breathing", Emoji: "🫁", DisplayOrder: 1, IsActive: true},
				{Code: "guided_meditation", Label: "Guided meditation", Emoji: "🧘", DisplayOrder: 2, IsActive: true},
				{Code: "soundscape", Label: "Soundscape", Emoji: "🌧️", DisplayOrder: 3, IsActive: true},
				{Code: "short_reflections", Label: "Short reflections", Emoji: "📝", DisplayOrder: 4, IsActive: true},
				{Code: "mindful_journaling", Label: "Mindful journaling", Emoji: "📓", DisplayOrder: 5, IsActive: true},
			},
			Fields: models.FieldDocs{multiSelectField("practice_preferences", "Select practice preferences", "practices", true, 1)},
		},
		{
			Category:       "experience_levels",
			ViewOrder:      6,
			ScreenKey:      "experience",
			ScreenTitle:    "Experience Level",
			ScreenSubtitle: "We will tailor difficulty and guidance tone",
			ScreenType:     "single",
			ScreenIcon:     "📚",
			Templates: models.TemplateItems{
				{Code: "beginner", Label: "Beginner", Emoji: "🌱", DisplayOrder: 1, IsActive: true},
				{Code: "intermediate", Label: "Intermediate", Emoji: "🌿", DisplayOrder: 2, IsActive: true},
				{Code: "advanced", Label: "Advanced", Emoji: "🌳", DisplayOrder: 3, IsActive: true},
			},
			Fields: models.FieldDocs{singleSelectField("experience_level", "Select experience level", "experience_levels")},
		},
		{
			Category:       "mood_tendencies",
			ViewOrder:      7,
			ScreenKey:      "mood",
			ScreenTitle:    "Mood Tendencies",
			ScreenSubtitle: "Pick the one that fits you most often",
			ScreenType:     "single",
			ScreenIcon:     "😊",
			Templates: models.TemplateItems{
				{Code: "calm", Label: "Calm", Emoji: "😌", DisplayOrder: 1, IsActive: true},
				{Code: "stressed", Label: "Stressed", Emoji: "😣", DisplayOrder: 2, IsActive: true},
				{Code: "sad", Label: "Sad", Emoji: "😞", DisplayOrder: 3, IsActive: true},
				{Code: "happy", Label: "Happy", Emoji: "😊", DisplayOrder: 4, IsActive: true},
			},
			Fields: models.FieldDocs{singleSelectField("mood_tendency", "Select mood tendency", "mood_tendencies")},
		},
		{
			Category:       "practice_times",
			ViewOrder:      8,
			ScreenKey:      "time",
			ScreenTitle:    "Personalize Your Journey",
			ScreenSubtitle: "When do you prefer to practice?",
			ScreenType:     "single",
			ScreenIcon:     "🌅",
			Templates: models.TemplateItems{
				{Code: "morning", Label: "Morning", Emoji: "🌅", DisplayOrder: 1, IsActive: true},
				{Code: "afternoon", Label: "Afternoon", Emoji: "🌤️", DisplayOrder: 2, IsActive: true},
				{Code: "night", Label: "Night", Emoji: "🌃", DisplayOrder: 3, IsActive: true},
			},
			Fields: models.FieldDocs{singleSelectField("preferred_practice_time", "Select preferred practice time", "practice_times")},
		},
		{
			Category:       "reminders",
			ViewOrder:      9,
			ScreenKey:      "reminders",
			ScreenTitle:    "Notifications & Reminders",
			ScreenSubtitle: "Choose when you want gentle nudges",
			ScreenType:     "multi",
			ScreenIcon:     "🔔",
			Templates: models.TemplateItems{
				{Code: "morning", Label: "Morning check-in", Emoji: "🌞", DisplayOrder: 1, IsActive: true},
				{Code: "midday", Label: "Midday break", Emoji: "🌤️", DisplayOrder: 2, IsActive: true},
				{Code: "evening", Label: "Evening reflection", Emoji: "🌙", DisplayOrder: 3, IsActive: true},
			},
			Fields: models.FieldDocs{multiSelectField("reminder_times", "Select reminder times", "reminders", true, 1)},
		},
		{
			Category:       "interests",
			ViewOrder:      10,
			ScreenKey:      "interests",
			ScreenTitle:    "Optional Deep Interests",
			ScreenSubtitle: "This curates your articles and learning feed",
			ScreenType:     "multi",
			ScreenIcon:     "📖",
			Templates: models.TemplateItems{
				{Code: "mindfulness", Label: "Mindfulness", Emoji: "🧠", DisplayOrder: 1, IsActive: true},
				{Code: "sleep_science", Label: "Sleep science", Emoji: "🛌", DisplayOrder: 2, IsActive: true},
				{Code: "productivity", Label: "Productivity", Emoji: "⚡", DisplayOrder: 3, IsActive: true},
				{Code: "relationships", Label: "Relationships", Emoji: "💞", DisplayOrder: 4, IsActive: true},
				{Code: "self_compassion", Label: "Self-compassion", Emoji: "💗", DisplayOrder: 5, IsActive: true},
			},
			Fields: models.FieldDocs{multiSelectField("interests", "Select interests", "interests", false, 0)},
		},
		{
			Category:       "consent",
			ViewOrder:      11,
			ScreenKey:      "consent",
			ScreenTitle:    "Data Privacy & Consent",
			ScreenSubtitle: "Your wellness journey, your data",
			ScreenType:     "consent",
			ScreenIcon:     "🔒",
			Templates:      models.TemplateItems{},
			Fields:         consentFields(),
		},
	}
}

// Static enum options exposed alongside the catalog; these are fixed values,
// not admin-editable templates.
var (
	DefaultAgeRanges  = []string{"13-17", "18-24", "25-34", "35-44", "45-54", "55-64", "65+"}
	DefaultGenders    = []string{"male", "female", "non_binary", "prefer_not_say"}
	DefaultWorkHours  = []string{"under_4", "4_6", "6_8", "8_10", "10_12", "over_12"}
	DefaultScreenTime = []string{"under_2", "2_4", "4_6", "6_8", "8_10", "over_10"}
)

func multiSelectField(key, label, templatesCategory string, required bool, minSelections int) map[string]any {
	return map[string]any{
		"field_key":          key,
		"field_type":         "multi_select",
		"label":              label,
		"data_type":          "array",
		"required":           required,
		"optional":           !required,
		"min_selections":     minSelections,
		"max_selections":     nil,
		"options_source":     "template_category",
		"templates_category": templatesCategory,
		"display_style":      "grid",
	}
}

func singleSelectField(key, label, templatesCategory string) map[string]any {
	return map[string]any{
		"field_key":          key,
		"field_type":         "single_select",
		"label":              label,
		"data_type":          "string",
		"required":           true,
		"optional":           false,
		"options_source":     "template_category",
		"templates_category": templatesCategory,
		"display_style":      "grid",
	}
}

func staticOption(code, label string) map[string]any {
	return map[string]any{"code": code, "label": label, "id": code}
}

func basicFields() models.FieldDocs {
	return models.FieldDocs{
		{
			"field_key":     "name",
			"field_type":    "text",
			"type":          "text",
			"label":         "Name",
			"placeholder":   "Enter your name",
			"data_type":     "string",
			"required":      true,
			"optional":      false,
			"validation":    map[string]any{"min_length": 1, "max_length": 100},
			"keyboard_type": "default",
		},
		{
			"field_key":      "age_range",
			"field_type":     "dropdown",
			"type":           "dropdown",
			"label":          "Age range",
			"placeholder":    "Select age range",
			"data_type":      "string",
			"required":       true,
			"optional":       false,
			"options_source": "static",
			"options": []map[string]any{
				staticOption("13-17", "13-17"),
				staticOption("18-24", "18-24"),
				staticOption("25-34", "25-34"),
				staticOption("35-44", "35-44"),
				staticOption("45-54", "45-54"),
				staticOption("55-64", "55-64"),
				staticOption("65+", "65+"),
			},
		},
		{
			"field_key":      "gender",
			"field_type":     "dropdown",
			"type":           "dropdown",
			"label":          "Gender",
			"placeholder":    "Select gender",
			"data_type":      "string",
			"required":       false,
			"optional":       true,
			"options_source": "static",
			"options": []map[string]any{
				staticOption("male", "Male"),
				staticOption("female", "Female"),
				staticOption("non_binary", "Non-binary"),
				staticOption("prefer_not_say", "Prefer not to say"),
			},
		},
		{
			"field_key":     "occupation",
			"field_type":    "text",
			"type":          "text",
			"label":         "Occupation",
			"placeholder":   "Enter your occupation",
			"data_type":     "string",
			"required":      false,
			"optional":      true,
			"validation":    map[string]any{"max_length": 100},
			"keyboard_type": "default",
		},
	}
}

func lifestyleFields() models.FieldDocs {
	return models.FieldDocs{
		{
			"field_key":     "wake_time",
			"field_type":    "time",
			"type":          "time",
			"label":         "Wake-up time",
			"placeholder":   "Select time",
			"data_type":     "string",
			"required":      true,
			"optional":      false,
			"format":        "HH:mm",
			"allow_range":   false,
			"default_value": "07:00",
			"time_picker_config": map[string]any{
				"minute_interval": 5,
				"show_seconds":    false,
			},
		},
		{
			"field_key":   "sleep_time",
			"field_type":  "time_range",
			"type":        "time", // time_range renders with the same picker
			"label":       "Sleep time",
			"placeholder": "Select time range",
			"data_type":   "string",
			"required":    true,
			"optional":    false,
			"format":      "HH:mm - HH:mm",
			"allow_range": true,
			"time_picker_config": map[string]any{
				"minute_interval": 5,
				"allow_single":    true,
			},
		},
		{
			"field_key":      "work_hours",
			"field_type":     "dropdown",
			"type":           "dropdown",
			"label":          "Average daily work hours",
			"placeholder":    "Select work hours",
			"data_type":      "string",
			"required":       true,
			"optional":       false,
			"options_source": "static",
			"options": []map[string]any{
				staticOption("under_4", "Under 4 hours"),
				staticOption("4_6", "4-6 hours"),
				staticOption("6_8", "6-8 hours"),
				staticOption("8_10", "8-10 hours"),
				staticOption("10_12", "10-12 hours"),
				staticOption("over_12", "Over 12 hours"),
			},
		},
		{
			"field_key":      "screen_time",
			"field_type":     "dropdown",
			"type":           "dropdown",
			"label":          "Daily screen time",
			"placeholder":    "Select screen time",
			"data_type":      "string",
			"required":       true,
			"optional":       false,
			"options_source": "static",
			"options": []map[string]any{
				staticOption("under_2", "Under 2 hours"),
				staticOption("2_4", "2-4 hours"),
				staticOption("4_6", "4-6 hours"),
				staticOption("6_8", "6-8 hours"),
				staticOption("8_10", "8-10 hours"),
				staticOption("over_10", "Over 10 hours"),
			},
		},
	}
}

func consentFields() models.FieldDocs {
	return models.FieldDocs{
		{
			"field_key":     "data_consent",
			"field_type":    "switch",
			"type":          "switch",
			"label":         "I agree to use my wellness data for personalized insights",
			"data_type":     "boolean",
			"required":      true,
			"optional":      false,
			"default_value": false,
			"consent_text":  "We use your wellness data to personalize your experience: recommending sessions, articles, and reminders that fit your goals and challenges. Your data stays secure and is never shared with third parties. You can update your preferences anytime in settings.",
		},
	}
}
