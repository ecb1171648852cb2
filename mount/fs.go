package mount

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	fuse "bazil.org/fuse"
	fuse_fs "bazil.org/fuse/fs"
	"github.com/rs/zerolog/log"

	"github.com/rstms/memview/dump"
	"github.com/rstms/memview/view"
)

const (
	TextSuffix = ".hex"
	JSONSuffix = ".json"
)

// FS presents the regular files of a directory as read-only hex dumps.
type FS struct {
	dir string
	uid uint32
	gid uint32
}

type dirNode struct {
	fs *FS
}

type fileNode struct {
	name    string
	content []byte
	inode   uint64
	source  os.FileInfo
	uid     uint32
	gid     uint32
}

type fileHandle struct {
	file *fileNode
}

func NewFS(dir string) *FS {
	return &FS{
		dir: dir,
		uid: uint32(os.Getuid()),
		gid: uint32(os.Getgid()),
	}
}

func (f *FS) Root() (fuse_fs.Node, error) {
	return &dirNode{fs: f}, nil
}

// sources returns the regular files of the source directory by name.
func (f *FS) sources() ([]string, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("failed reading %s: %v", f.dir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Render returns the content of a dump file and the source file info.
func (f *FS) Render(name string) ([]byte, os.FileInfo, error) {
	var source string
	var render func([]dump.Row) ([]byte, error)
	switch {
	case strings.HasSuffix(name, TextSuffix):
		source = strings.TrimSuffix(name, TextSuffix)
		render = func(rows []dump.Row) ([]byte, error) {
			return []byte(dump.Text(rows, nil)), nil
		}
	case strings.HasSuffix(name, JSONSuffix):
		source = strings.TrimSuffix(name, JSONSuffix)
		render = func(rows []dump.Row) ([]byte, error) {
			return json.MarshalIndent(rows, "", "  ")
		}
	default:
		return nil, nil, syscall.ENOENT
	}
	if source == "" || strings.ContainsRune(source, filepath.Separator) {
		return nil, nil, syscall.ENOENT
	}
	path := filepath.Join(f.dir, source)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, nil, syscall.ENOENT
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	content, err := render(dump.FormatAuto(data))
	if err != nil {
		return nil, nil, err
	}
	return content, info, nil
}

func (d *dirNode) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Inode = 1
	a.Mode = os.ModeDir | 0555
	a.Uid = d.fs.uid
	a.Gid = d.fs.gid
	return nil
}

func (d *dirNode) Lookup(ctx context.Context, name string) (fuse_fs.Node, error) {
	log.Debug().Msgf("FUSE Lookup for %s", name)
	content, info, err := d.fs.Render(name)
	if err != nil {
		return nil, err
	}
	inode, err := view.Fingerprint([]byte(name))
	if err != nil {
		return nil, err
	}
	// inode 1 is the root directory
	if inode < 2 {
		inode += 2
	}
	return &fileNode{
		name:    name,
		content: content,
		inode:   inode,
		source:  info,
		uid:     d.fs.uid,
		gid:     d.fs.gid,
	}, nil
}

func (d *dirNode) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	log.Debug().Msgf("FUSE ReadDirAll")
	names, err := d.fs.sources()
	if err != nil {
		return nil, err
	}
	var res []fuse.Dirent
	for _, name := range names {
		for _, suffix := range []string{TextSuffix, JSONSuffix} {
			res = append(res, fuse.Dirent{
				Name: name + suffix,
				Type: fuse.DT_File,
			})
		}
	}
	return res, nil
}

func (f *fileNode) Attr(ctx context.Context, a *fuse.Attr) error {
	log.Debug().Msgf("FUSE Attr for file %s", f.name)
	a.Inode = f.inode
	a.Mode = 0444
	a.Size = uint64(len(f.content))
	a.Mtime = f.source.ModTime()
	a.Ctime = a.Mtime
	a.Atime = a.Mtime
	a.Uid = f.uid
	a.Gid = f.gid
	return nil
}

func (f *fileNode) Open(ctx context.Context, req *fuse.OpenRequest, resp *fuse.OpenResponse) (fuse_fs.Handle, error) {
	log.Debug().Msgf("FUSE Open for file %s", f.name)
	if !req.Flags.IsReadOnly() {
		return nil, syscall.EACCES
	}
	return &fileHandle{file: f}, nil
}

func (h *fileHandle) Read(ctx context.Context, req *fuse.ReadRequest, resp *fuse.ReadResponse) error {
	log.Debug().Msgf("FUSE Read for file %s: offset = %d, size = %d", h.file.name, req.Offset, req.Size)
	size := int64(len(h.file.content))
	if req.Offset >= size {
		resp.Data = []byte{}
		return nil
	}
	end := req.Offset + int64(req.Size)
	if end > size {
		end = size
	}
	resp.Data = h.file.content[req.Offset:end]
	return nil
}

func (h *fileHandle) Release(ctx context.Context, req *fuse.ReleaseRequest) error {
	return nil
}
