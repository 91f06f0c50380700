package git

import (
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
)

// LastCommitContent reads the HEAD version of a file in the repository
// at the current working directory. Drives the compare-against-HEAD mode.
func LastCommitContent(filePath string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil { return "", fmt.Errorf("error getting current working directory: %w", err) }

	r, err := gogit.PlainOpen(filepath.Join(cwd))
	if err != nil { return "", fmt.Errorf("error opening git repository: %w", err) }

	ref, err := r.Head()
	if err != nil { return "", fmt.Errorf("error getting repository HEAD: %w", err) }

	commit, err := r.CommitObject(ref.Hash())
	if err != nil { return "", fmt.Errorf("error getting commit object: %w", err) }

	tree, err := commit.Tree()
	if err != nil { return "", fmt.Errorf("error getting commit tree: %w", err) }

	file, err := tree.File(filePath)
	if err != nil { return "", fmt.Errorf("error getting file from tree: %w", err) }

	content, err := file.Contents()
	if err != nil { return "", fmt.Errorf("error getting file contents: %w", err) }

	return content, nil
}
