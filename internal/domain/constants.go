package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Namespace and flags understood by the processor.
const (
	NamespaceCommand = "bs"
	LocalFlag        = "--local"
)

// Session defaults
const (
	DefaultPrompt     = "$ "
	DefaultUser       = "user"
	DefaultWorkingDir = "/home/user"
	DefaultDocsURL    = "https://docs.freestyle.sh"
)

// Input keys delivered by the host terminal.
const (
	KeyInterrupt = '\x03'
	KeyEOF       = '\x04'
	KeyEnter     = '\r'
	KeyBackspace = '\x7f'
	KeyEscape    = '\x1b'
)

// Time formats
const (
	// DateFormat renders like a browser Date.toString().
	DateFormat = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"
)

// DefaultLinkTimeout bounds the browser launcher so it cannot hang the host.
const DefaultLinkTimeout = 10 * time.Second
