package main

import (
	"github.com/bornholm/brief/internal/command"
	"github.com/bornholm/brief/internal/command/remote"
	"github.com/bornholm/brief/internal/command/summarize"

	// Text extractors
	_ "github.com/bornholm/brief/internal/adapter/docx"
	_ "github.com/bornholm/brief/internal/adapter/genai"
	_ "github.com/bornholm/brief/internal/adapter/pandoc"
	_ "github.com/bornholm/brief/internal/adapter/pdf"
	_ "github.com/bornholm/brief/internal/adapter/plaintext"

	// Document sources
	_ "github.com/bornholm/brief/internal/source/ftp"
	_ "github.com/bornholm/brief/internal/source/git"
	_ "github.com/bornholm/brief/internal/source/local"
	_ "github.com/bornholm/brief/internal/source/minio"
	_ "github.com/bornholm/brief/internal/source/sftp"
	_ "github.com/bornholm/brief/internal/source/smb"
	_ "github.com/bornholm/brief/internal/source/webdav"

	// GenAI text extractors
	_ "github.com/bornholm/genai/extract/provider/marker"
	_ "github.com/bornholm/genai/extract/provider/mistral"
)

func main() {
	command.Main(
		"brief", "summarize documents from the command line",
		summarize.Command(),
		remote.Command(),
	)
}
