// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AccessibilitySettings holds per-user accessibility preferences. The
// boolean gates are pointers so an absent field keeps its default instead
// of reading as false.
type AccessibilitySettings struct {
	HapticEnabled    *bool   `json:"haptic_enabled,omitempty"`
	HapticIntensity  float64 `json:"haptic_intensity,omitempty"`
	AudioEnabled     *bool   `json:"audio_enabled,omitempty"`
	AudioSpeed       float64 `json:"audio_speed,omitempty"`
	HighContrast     bool    `json:"high_contrast,omitempty"`
	FontSize         int     `json:"font_size,omitempty"`
	ReduceMotion     bool    `json:"reduce_motion,omitempty"`
	ScreenReaderMode bool    `json:"screen_reader_mode,omitempty"`
}

// UserPreferences holds per-user presentation preferences.
type UserPreferences struct {
	PreferredLanguage string `json:"preferred_language,omitempty"`
	PreferredVoice    string `json:"preferred_voice,omitempty"`
	Theme             string `json:"theme,omitempty"`
	AutoPlayAudio     bool   `json:"auto_play_audio,omitempty"`
	SaveHistory       bool   `json:"save_history,omitempty"`
}

// UserProfile is consumed read-only by the orchestrator; it gates haptic
// and audio generation and parameterizes the language. A nil profile means
// all defaults.
type UserProfile struct {
	Accessibility *AccessibilitySettings `json:"accessibility,omitempty"`
	Preferences   *UserPreferences       `json:"preferences,omitempty"`
}

// HapticsEnabled reports whether haptic generation is enabled (default true).
func (p *UserProfile) HapticsEnabled() bool {
	if p == nil || p.Accessibility == nil || p.Accessibility.HapticEnabled == nil {
		return true
	}
	return *p.Accessibility.HapticEnabled
}

// AudioEnabled reports whether audio output is enabled (default true).
func (p *UserProfile) AudioEnabled() bool {
	if p == nil || p.Accessibility == nil || p.Accessibility.AudioEnabled == nil {
		return true
	}
	return *p.Accessibility.AudioEnabled
}

// Language returns the user's preferred language, or fallback when unset.
func (p *UserProfile) Language(fallback string) string {
	if p == nil || p.Preferences == nil || p.Preferences.PreferredLanguage == "" {
		return fallback
	}
	return p.Preferences.PreferredLanguage
}
