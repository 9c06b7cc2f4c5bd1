package i18n

import "github.com/videval/videval/internal/validation"

// Message is one localized catalog record for a validation error kind.
type Message struct {
	Message    string
	Suggestion string
	Example    string
	UserAction string
}

const exampleWatchURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

// catalog is static data, total over validation.AllKinds for every supported
// language. Keeping it as a plain literal makes missing translations trivial
// to audit (and a test proves totality).
var catalog = map[Language]map[validation.Kind]Message{
	Japanese: {
		validation.InvalidFormat: {
			Message:    "URLの形式が正しくありません。",
			Suggestion: "YouTube動画のURL、または11文字の動画IDを入力してください。",
			Example:    exampleWatchURL,
			UserAction: "入力内容を確認して、もう一度お試しください。",
		},
		validation.NotTargetDomain: {
			Message:    "YouTube以外のURLには対応していません。",
			Suggestion: "youtube.com または youtu.be の動画URLをコピーして貼り付けてください。",
			Example:    exampleWatchURL,
			UserAction: "YouTubeの動画URLを入力してください。",
		},
		validation.MissingIdentifier: {
			Message:    "URLから動画IDが見つかりませんでした。",
			Suggestion: "チャンネルや検索結果ではなく、動画ページのURLをアドレスバーからコピーしてください。",
			Example:    exampleWatchURL,
			UserAction: "動画ページを開いて、そのURLを入力してください。",
		},
		validation.PrivateResource: {
			Message:    "この動画は非公開に設定されています。",
			Suggestion: "動画の所有者に公開設定（公開または限定公開）への変更を依頼してください。",
			UserAction: "別の動画を選択してください。",
		},
		validation.ResourceNotFound: {
			Message:    "動画が見つかりませんでした。",
			Suggestion: "削除された可能性があります。URLが正しいか確認してください。",
			UserAction: "URLを確認して、もう一度お試しください。",
		},
		validation.NetworkError: {
			Message:    "YouTubeへの接続に失敗しました。",
			Suggestion: "しばらく時間をおいてから、もう一度お試しください。",
			UserAction: "時間をおいて再試行してください。",
		},
		validation.DuplicateResource: {
			Message:    "この動画はすでに登録されています。",
			Suggestion: "新しく登録する代わりに、既存の動画を開いてください。",
			UserAction: "登録済みの動画一覧を確認してください。",
		},
	},
	English: {
		validation.InvalidFormat: {
			Message:    "The URL format is invalid.",
			Suggestion: "Enter a YouTube video URL or an 11-character video ID.",
			Example:    exampleWatchURL,
			UserAction: "Check your input and try again.",
		},
		validation.NotTargetDomain: {
			Message:    "Only YouTube URLs are supported.",
			Suggestion: "Copy the video URL from youtube.com or youtu.be and paste it here.",
			Example:    exampleWatchURL,
			UserAction: "Enter a YouTube video URL.",
		},
		validation.MissingIdentifier: {
			Message:    "No video ID was found in the URL.",
			Suggestion: "Copy the URL of the video page itself from the address bar, not a channel or search page.",
			Example:    exampleWatchURL,
			UserAction: "Open the video page and enter its URL.",
		},
		validation.PrivateResource: {
			Message:    "This video is private.",
			Suggestion: "Ask the video owner to make it public or unlisted.",
			UserAction: "Choose a different video.",
		},
		validation.ResourceNotFound: {
			Message:    "The video could not be found.",
			Suggestion: "It may have been deleted. Check that the URL is correct.",
			UserAction: "Check the URL and try again.",
		},
		validation.NetworkError: {
			Message:    "Failed to reach YouTube.",
			Suggestion: "Wait a moment and try again.",
			UserAction: "Retry after a short wait.",
		},
		validation.DuplicateResource: {
			Message:    "This video is already registered.",
			Suggestion: "Open the existing entry instead of registering it again.",
			UserAction: "Check the list of registered videos.",
		},
	},
}

// fallback is returned for kinds outside the taxonomy. A defensive boundary
// case only: errors produced inside this codebase always carry a real kind.
var fallback = map[Language]Message{
	Japanese: {
		Message:    "不明なエラーが発生しました。",
		Suggestion: "もう一度お試しください。",
		UserAction: "時間をおいて再試行してください。",
	},
	English: {
		Message:    "An unknown error occurred.",
		Suggestion: "Please try again.",
		UserAction: "Retry after a short wait.",
	},
}

// helpTitles is the fixed, localized title used in structured help bundles.
var helpTitles = map[Language]string{
	Japanese: "URL検証エラー",
	English:  "URL Validation Error",
}

// exampleLabels is the localized label prefixed to example lines.
var exampleLabels = map[Language]string{
	Japanese: "例:",
	English:  "Example:",
}

// Lookup returns the catalog record for (kind, lang). Unknown kinds yield
// the generic fallback record in the requested language; unsupported
// languages fall back to the default language. Lookup is total and never
// returns an empty message.
func Lookup(kind validation.Kind, lang Language) Message {
	if !supported[lang] {
		lang = DefaultLanguage
	}
	if msg, ok := catalog[lang][kind]; ok {
		return msg
	}
	return fallback[lang]
}
