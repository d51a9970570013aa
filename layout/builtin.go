package layout

// Builtin returns the layout set for the supported donation platforms.
// The questionnaire layouts are listed first as they are more specific than
// the plain platform layouts.
func Builtin() *Set {
	// patterns are compiled from literals, a compile failure is a programming error
	mustLayout := func(name, pattern string) *Layout {
		l, err := NewLayout(name, pattern)
		if err != nil {
			panic(err)
		}
		return l
	}

	return NewSet(
		mustLayout("youtube-questionnaire",
			`participant-%{DATA:participant_id}_source-YouTube_key-%{INT:timestamp}-questionnaire-donation.json`),
		mustLayout("tiktok-questionnaire",
			`participant-%{DATA:participant_id}_source-TikTok_key-%{INT:timestamp}-questionnaire-donation.json`),
		mustLayout("youtube",
			`participant-%{DATA:participant_id}_source-YouTube_key-%{WORD}.json`),
		mustLayout("tiktok",
			`participant-%{DATA:participant_id}_source-TikTok_key-%{WORD}.json`),
	)
}
