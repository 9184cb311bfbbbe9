package cbz2pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// workspacePermissions restricts extracted pages to the owning user.
const workspacePermissions = 0o750

// Workspace is a per-job temporary directory holding extracted pages.
// Each job owns its workspace exclusively; the UUID suffix keeps names
// collision-free under concurrent creation.
type Workspace struct {
	Dir string
}

// NewWorkspace creates a uniquely named directory under the system temp
// directory. Callers must arrange for Remove to run on every exit path.
func NewWorkspace() (*Workspace, error) {
	dir := filepath.Join(os.TempDir(), "cbz2pdf-"+uuid.NewString())
	if err := os.Mkdir(dir, workspacePermissions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkspace, err)
	}
	return &Workspace{Dir: dir}, nil
}

// Remove deletes the workspace and everything extracted into it.
func (w *Workspace) Remove() {
	_ = os.RemoveAll(w.Dir)
}
