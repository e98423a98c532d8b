package launchsvc

// contentTypes maps extensions to their uniform type identifiers. Setting a
// default through the content type as well as the filename tag is what makes
// LaunchServices honor the change for documents it types by UTI.
var contentTypes = map[string]string{
	"doc":      "com.microsoft.word.doc",
	"docx":     "org.openxmlformats.wordprocessingml.document",
	"xls":      "com.microsoft.excel.xls",
	"xlsx":     "org.openxmlformats.spreadsheetml.sheet",
	"ppt":      "com.microsoft.powerpoint.ppt",
	"pptx":     "org.openxmlformats.presentationml.presentation",
	"txt":      "public.plain-text",
	"pdf":      "com.adobe.pdf",
	"png":      "public.png",
	"jpg":      "public.jpeg",
	"jpeg":     "public.jpeg",
	"gif":      "public.gif",
	"csv":      "public.comma-separated-values-text",
	"mp3":      "public.mp3",
	"mp4":      "public.mpeg-4",
	"mov":      "com.apple.quicktime-movie",
	"avi":      "public.avi",
	"zip":      "public.zip-archive",
	"rar":      "public.rar-archive",
	"7z":       "public.7z-archive",
	"tar":      "public.tar-archive",
	"gz":       "public.gzip-archive",
	"json":     "public.json",
	"xml":      "public.xml",
	"html":     "public.html",
	"htm":      "public.html",
	"css":      "public.css",
	"js":       "public.javascript",
	"ts":       "public.typescript",
	"jsx":      "public.jsx",
	"tsx":      "public.tsx",
	"md":       "net.daringfireball.markdown",
	"markdown": "net.daringfireball.markdown",
	"py":       "public.python-script",
	"java":     "com.sun.java-source",
	"cpp":      "public.c-plus-plus-source",
	"c":        "public.c-source",
	"h":        "public.c-header",
	"hpp":      "public.c-plus-plus-header",
	"sh":       "public.shell-script",
	"bash":     "public.shell-script",
	"zsh":      "public.shell-script",
	"fish":     "public.shell-script",
	"sql":      "public.sql-source",
	"db":       "public.database",
	"sqlite":   "public.sqlite3-database",
	"log":      "public.log",
	"ini":      "public.ini",
	"cfg":      "public.configuration",
	"conf":     "public.configuration",
	"yaml":     "public.yaml",
	"yml":      "public.yaml",
	"toml":     "public.toml",
	"env":      "public.environment",
	"key":      "public.private-key",
	"pem":      "public.pem",
	"crt":      "public.certificate",
}

func contentTypeFor(extension string) (string, bool) {
	uti, ok := contentTypes[extension]
	return uti, ok
}
