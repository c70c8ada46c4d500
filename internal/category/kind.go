package category

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind is the closed set of attachment kinds the chat platform delivers.
type Kind string

const (
	KindDocument Kind = "document"
	KindPhoto    Kind = "photo"
	KindVideo    Kind = "video"
	KindAudio    Kind = "audio"
	KindVoice    Kind = "voice"
)

// ParseKind returns the Kind named by s. An empty string is treated as a document.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return KindDocument, nil
	case KindDocument, KindPhoto, KindVideo, KindAudio, KindVoice:
		return k, nil
	default:
		return "", fmt.Errorf("unknown attachment kind %q", s)
	}
}

// defaultFileType is the intrinsic file-type token of each kind.
func (k Kind) defaultFileType() string {
	switch k {
	case KindPhoto:
		return "jpg"
	case KindVideo:
		return "mp4"
	case KindAudio:
		return "mp3"
	case KindVoice:
		return "ogg"
	default:
		return "doc"
	}
}

var mimeToFileType = map[string]string{
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": "docx",

	"application/pdf":                         "pdf",
	"application/msword":                      "doc",
	"text/plain":                              "txt",
	"application/zip":                         "zip",
	"application/x-rar-compressed":            "rar",
	"application/vnd.android.package-archive": "apk",
	"application/x-aab":                       "aab",
	"application/x-xapk":                      "xapk",
	"application/octet-stream":                "obb",
	"image/jpeg":                              "jpg",
	"image/png":                               "png",
	"image/gif":                               "gif",
	"image/webp":                              "webp",
	"video/mp4":                               "mp4",
	"video/avi":                               "avi",
	"video/mov":                               "mov",
	"audio/mpeg":                              "mp3",
	"audio/wav":                               "wav",
	"audio/ogg":                               "ogg",
}

// Attachment describes a file as delivered by the chat platform.
type Attachment struct {
	Kind     Kind
	FileName string
	MimeType string
}

// FileType derives the lowercase extension token for the attachment.
// Resolution order: original file name, photo default, video/audio MIME family,
// voice default, exact MIME table, then the kind's default.
func (a Attachment) FileType() string {
	if ext := extension(a.FileName); ext != "" {
		return ext
	}
	mime := strings.ToLower(a.MimeType)
	switch {
	case a.Kind == KindPhoto:
		return "jpg"
	case strings.Contains(mime, "video"):
		return "mp4"
	case strings.Contains(mime, "audio"):
		return "mp3"
	case a.Kind == KindVoice:
		return "ogg"
	}
	if ft, ok := mimeToFileType[mime]; ok {
		return ft
	}
	return a.Kind.defaultFileType()
}

// DefaultFileName returns the display name to use when the platform sent none.
func (a Attachment) DefaultFileName(platformFileID string) string {
	if a.FileName != "" {
		return a.FileName
	}
	short := platformFileID
	if len(short) > 8 {
		short = short[:8]
	}
	switch a.Kind {
	case KindPhoto, KindVideo, KindAudio, KindVoice:
		return fmt.Sprintf("%s_%s.%s", a.Kind, short, a.Kind.defaultFileType())
	}
	return fmt.Sprintf("file_%s.%s", short, a.FileType())
}

func extension(name string) string {
	if name == "" {
		return ""
	}
	return NormalizeFileType(filepath.Ext(name))
}
