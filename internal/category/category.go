package category

import "strings"

// Category is one label from the fixed catalogue taxonomy.
// The label is stored on every file record at registration time and is never
// recomputed on read, so changing the tables below does not re-categorize old records.
type Category string

const (
	Documents Category = "documents"
	Images    Category = "images"
	Videos    Category = "videos"
	Audio     Category = "audio"
	Archives  Category = "archives"
	// APK covers Android platform packages.
	APK   Category = "apk"
	Other Category = "other"
)

var all = []Category{Documents, Images, Videos, Audio, Archives, APK, Other}

var byFileType = map[string]Category{
	"pdf": Documents, "doc": Documents, "docx": Documents, "txt": Documents, "rtf": Documents, "odt": Documents,
	"jpg": Images, "jpeg": Images, "png": Images, "gif": Images, "webp": Images, "bmp": Images, "svg": Images,
	"mp4": Videos, "avi": Videos, "mov": Videos, "mkv": Videos, "wmv": Videos, "flv": Videos, "webm": Videos,
	"mp3": Audio, "wav": Audio, "ogg": Audio, "flac": Audio, "aac": Audio, "m4a": Audio,
	"zip": Archives, "rar": Archives, "7z": Archives, "tar": Archives, "gz": Archives, "bz2": Archives,
	"apk": APK, "aab": APK, "xapk": APK, "apks": APK, "apkm": APK, "obb": APK,
}

var icons = map[Category]string{
	Documents: "📄",
	Images:    "🖼️",
	Videos:    "🎬",
	Audio:     "🎵",
	Archives:  "📦",
	APK:       "📱",
	Other:     "📁",
}

var displayNames = map[Category]string{
	Documents: "Документы",
	Images:    "Изображения",
	Videos:    "Видео",
	Audio:     "Аудио",
	Archives:  "Архивы",
	APK:       "Android приложения",
	Other:     "Другое",
}

// NormalizeFileType lowercases a file-type token and strips surrounding space and a leading dot.
func NormalizeFileType(fileType string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(fileType)), ".")
}

// Of maps a file-type token (extension) to its category. Unknown or empty tokens map to Other.
func Of(fileType string) Category {
	if c, ok := byFileType[NormalizeFileType(fileType)]; ok {
		return c
	}
	return Other
}

// All returns the fixed category vocabulary in display order.
func All() []Category {
	out := make([]Category, len(all))
	copy(out, all)
	return out
}

// Valid reports whether s is one of the known category labels.
func Valid(s string) bool {
	_, ok := displayNames[Category(s)]
	return ok
}

// Icon returns the emoji shown next to the category in listings.
func Icon(c Category) string {
	if icon, ok := icons[c]; ok {
		return icon
	}
	return icons[APK]
}

// DisplayName returns the localized category name.
func DisplayName(c Category) string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return displayNames[Other]
}

func (c Category) String() string { return string(c) }
