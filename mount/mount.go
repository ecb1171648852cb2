package mount

import (
	"context"
	"fmt"

	fuse "bazil.org/fuse"
	fuse_fs "bazil.org/fuse/fs"
	"github.com/rs/zerolog/log"
)

// Mount serves the dump view of dir at mountpoint until ctx is done.
func Mount(ctx context.Context, dir, mountpoint string) error {
	c, err := fuse.Mount(mountpoint,
		fuse.FSName("memview"),
		fuse.Subtype("memview"),
		fuse.ReadOnly(),
	)
	if err != nil {
		return fmt.Errorf("failed mounting %s: %v", mountpoint, err)
	}
	defer c.Close()
	log.Info().Str("source", dir).Str("mountpoint", mountpoint).Msg("mounted")

	errc := make(chan error, 1)
	go func() {
		errc <- fuse_fs.Serve(c, NewFS(dir))
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("fuse serve failed: %v", err)
		}
		return nil
	case <-ctx.Done():
		log.Info().Str("mountpoint", mountpoint).Msg("unmounting")
		err := fuse.Unmount(mountpoint)
		if err != nil {
			return fmt.Errorf("failed unmounting %s: %v", mountpoint, err)
		}
		return <-errc
	}
}
