package host

import "context"

// Gallery wraps the host gallery object from the color page.
type Gallery struct{ obj Object }

func (g Gallery) Valid() bool { return g.obj != nil }
func (g Gallery) raw() Object { return g.obj }

func (g Gallery) AlbumName(ctx context.Context, album StillAlbum) (string, error) {
	return callString(ctx, g.obj, "GetAlbumName", album.raw())
}

func (g Gallery) SetAlbumName(ctx context.Context, album StillAlbum, name string) (bool, error) {
	return callBool(ctx, g.obj, "SetAlbumName", album.raw(), name)
}

func (g Gallery) CurrentStillAlbum(ctx context.Context) (StillAlbum, error) {
	obj, err := callObject(ctx, g.obj, "GetCurrentStillAlbum")
	return StillAlbum{obj: obj}, err
}

func (g Gallery) SetCurrentStillAlbum(ctx context.Context, album StillAlbum) (bool, error) {
	return callBool(ctx, g.obj, "SetCurrentStillAlbum", album.raw())
}

func (g Gallery) StillAlbums(ctx context.Context) ([]StillAlbum, error) {
	objects, err := callObjects(ctx, g.obj, "GetGalleryStillAlbums")
	albums := make([]StillAlbum, 0, len(objects))
	for _, obj := range objects {
		albums = append(albums, StillAlbum{obj: obj})
	}
	return albums, err
}

func (g Gallery) CreateStillAlbum(ctx context.Context) (StillAlbum, error) {
	obj, err := callObject(ctx, g.obj, "CreateGalleryStillAlbum")
	return StillAlbum{obj: obj}, err
}

func (g Gallery) PowerGradeAlbums(ctx context.Context) ([]PowerGradeAlbum, error) {
	objects, err := callObjects(ctx, g.obj, "GetGalleryPowerGradeAlbums")
	albums := make([]PowerGradeAlbum, 0, len(objects))
	for _, obj := range objects {
		albums = append(albums, PowerGradeAlbum{obj: obj})
	}
	return albums, err
}

func (g Gallery) CreatePowerGradeAlbum(ctx context.Context, name string) (PowerGradeAlbum, error) {
	obj, err := callObject(ctx, g.obj, "CreateGalleryPowerGradeAlbum", name)
	return PowerGradeAlbum{obj: obj}, err
}

// PowerGradeAlbum wraps a host gallery power grade album object. Unlike
// still albums, the label lives on the album itself.
type PowerGradeAlbum struct{ obj Object }

func (a PowerGradeAlbum) Valid() bool { return a.obj != nil }
func (a PowerGradeAlbum) raw() Object { return a.obj }

func (a PowerGradeAlbum) Label(ctx context.Context) (string, error) {
	return callString(ctx, a.obj, "GetLabel")
}

// StillAlbum wraps a host gallery still album object.
type StillAlbum struct{ obj Object }

func (a StillAlbum) Valid() bool { return a.obj != nil }
func (a StillAlbum) raw() Object { return a.obj }

func (a StillAlbum) Stills(ctx context.Context) ([]Object, error) {
	return callObjects(ctx, a.obj, "GetStills")
}

func (a StillAlbum) Label(ctx context.Context, still Object) (string, error) {
	return callString(ctx, a.obj, "GetLabel", still)
}

func (a StillAlbum) SetLabel(ctx context.Context, still Object, label string) (bool, error) {
	return callBool(ctx, a.obj, "SetLabel", still, label)
}

func (a StillAlbum) ImportStills(ctx context.Context, paths []string) (bool, error) {
	return callBool(ctx, a.obj, "ImportStills", toAnySlice(paths))
}

func (a StillAlbum) ExportStills(ctx context.Context, stills []Object, folderPath, filePrefix, format string) (bool, error) {
	raw := make([]interface{}, len(stills))
	for i, s := range stills {
		raw[i] = s
	}
	return callBool(ctx, a.obj, "ExportStills", raw, folderPath, filePrefix, format)
}

func (a StillAlbum) DeleteStills(ctx context.Context, stills []Object) (bool, error) {
	raw := make([]interface{}, len(stills))
	for i, s := range stills {
		raw[i] = s
	}
	return callBool(ctx, a.obj, "DeleteStills", raw)
}
