package host

import "context"

// Resolve wraps the host application root object.
type Resolve struct{ obj Object }

// WrapResolve wraps a raw handle. The zero value is invalid.
func WrapResolve(obj Object) Resolve { return Resolve{obj: obj} }

func (r Resolve) Valid() bool { return r.obj != nil }
func (r Resolve) raw() Object { return r.obj }

func (r Resolve) ProductName(ctx context.Context) (string, error) {
	return callString(ctx, r.obj, "GetProductName")
}

func (r Resolve) Version(ctx context.Context) (string, error) {
	return callString(ctx, r.obj, "GetVersionString")
}

func (r Resolve) CurrentPage(ctx context.Context) (string, error) {
	return callString(ctx, r.obj, "GetCurrentPage")
}

func (r Resolve) OpenPage(ctx context.Context, page string) (bool, error) {
	return callBool(ctx, r.obj, "OpenPage", page)
}

func (r Resolve) KeyframeMode(ctx context.Context) (int, error) {
	return callInt(ctx, r.obj, "GetKeyframeMode")
}

func (r Resolve) SetKeyframeMode(ctx context.Context, mode int) (bool, error) {
	return callBool(ctx, r.obj, "SetKeyframeMode", mode)
}

func (r Resolve) LoadLayoutPreset(ctx context.Context, name string) (bool, error) {
	return callBool(ctx, r.obj, "LoadLayoutPreset", name)
}

func (r Resolve) SaveLayoutPreset(ctx context.Context, name string) (bool, error) {
	return callBool(ctx, r.obj, "SaveLayoutPreset", name)
}

func (r Resolve) UpdateLayoutPreset(ctx context.Context, name string) (bool, error) {
	return callBool(ctx, r.obj, "UpdateLayoutPreset", name)
}

func (r Resolve) DeleteLayoutPreset(ctx context.Context, name string) (bool, error) {
	return callBool(ctx, r.obj, "DeleteLayoutPreset", name)
}

func (r Resolve) ImportLayoutPreset(ctx context.Context, path, name string) (bool, error) {
	return callBool(ctx, r.obj, "ImportLayoutPreset", path, name)
}

func (r Resolve) ExportLayoutPreset(ctx context.Context, name, path string) (bool, error) {
	return callBool(ctx, r.obj, "ExportLayoutPreset", name, path)
}

func (r Resolve) Quit(ctx context.Context) error {
	_, err := r.obj.Call(ctx, "Quit")
	return err
}

func (r Resolve) ProjectManager(ctx context.Context) (ProjectManager, error) {
	obj, err := callObject(ctx, r.obj, "GetProjectManager")
	return ProjectManager{obj: obj}, err
}

func (r Resolve) MediaStorage(ctx context.Context) (MediaStorage, error) {
	obj, err := callObject(ctx, r.obj, "GetMediaStorage")
	return MediaStorage{obj: obj}, err
}

// ProjectManager wraps the host project manager object.
type ProjectManager struct{ obj Object }

func (m ProjectManager) Valid() bool { return m.obj != nil }
func (m ProjectManager) raw() Object { return m.obj }

func (m ProjectManager) CurrentProject(ctx context.Context) (Project, error) {
	obj, err := callObject(ctx, m.obj, "GetCurrentProject")
	return Project{obj: obj}, err
}

func (m ProjectManager) CreateProject(ctx context.Context, name string) (Project, error) {
	obj, err := callObject(ctx, m.obj, "CreateProject", name)
	return Project{obj: obj}, err
}

func (m ProjectManager) LoadProject(ctx context.Context, name string) (Project, error) {
	obj, err := callObject(ctx, m.obj, "LoadProject", name)
	return Project{obj: obj}, err
}

func (m ProjectManager) SaveProject(ctx context.Context) (bool, error) {
	return callBool(ctx, m.obj, "SaveProject")
}

func (m ProjectManager) CloseProject(ctx context.Context, p Project) (bool, error) {
	return callBool(ctx, m.obj, "CloseProject", p.raw())
}

func (m ProjectManager) DeleteProject(ctx context.Context, name string) (bool, error) {
	return callBool(ctx, m.obj, "DeleteProject", name)
}

func (m ProjectManager) ArchiveProject(ctx context.Context, name, path string) (bool, error) {
	return callBool(ctx, m.obj, "ArchiveProject", name, path)
}

func (m ProjectManager) ImportProject(ctx context.Context, path string) (bool, error) {
	return callBool(ctx, m.obj, "ImportProject", path)
}

func (m ProjectManager) ExportProject(ctx context.Context, name, path string, withStillsAndLUTs bool) (bool, error) {
	return callBool(ctx, m.obj, "ExportProject", name, path, withStillsAndLUTs)
}

func (m ProjectManager) ProjectList(ctx context.Context) ([]string, error) {
	return callStrings(ctx, m.obj, "GetProjectListInCurrentFolder")
}

func (m ProjectManager) FolderList(ctx context.Context) ([]string, error) {
	return callStrings(ctx, m.obj, "GetFolderListInCurrentFolder")
}

func (m ProjectManager) CurrentFolder(ctx context.Context) (string, error) {
	return callString(ctx, m.obj, "GetCurrentFolder")
}

func (m ProjectManager) CreateFolder(ctx context.Context, name string) (bool, error) {
	return callBool(ctx, m.obj, "CreateFolder", name)
}

func (m ProjectManager) DeleteFolder(ctx context.Context, name string) (bool, error) {
	return callBool(ctx, m.obj, "DeleteFolder", name)
}

func (m ProjectManager) OpenFolder(ctx context.Context, name string) (bool, error) {
	return callBool(ctx, m.obj, "OpenFolder", name)
}

func (m ProjectManager) GotoRootFolder(ctx context.Context) (bool, error) {
	return callBool(ctx, m.obj, "GotoRootFolder")
}

func (m ProjectManager) GotoParentFolder(ctx context.Context) (bool, error) {
	return callBool(ctx, m.obj, "GotoParentFolder")
}

func (m ProjectManager) CurrentDatabase(ctx context.Context) (map[string]interface{}, error) {
	return callMap(ctx, m.obj, "GetCurrentDatabase")
}

func (m ProjectManager) DatabaseList(ctx context.Context) (interface{}, error) {
	return m.obj.Call(ctx, "GetDatabaseList")
}

func (m ProjectManager) SetCurrentDatabase(ctx context.Context, info map[string]interface{}) (bool, error) {
	return callBool(ctx, m.obj, "SetCurrentDatabase", info)
}

func (m ProjectManager) CreateCloudProject(ctx context.Context, settings map[string]interface{}) (Project, error) {
	obj, err := callObject(ctx, m.obj, "CreateCloudProject", settings)
	return Project{obj: obj}, err
}

func (m ProjectManager) LoadCloudProject(ctx context.Context, settings map[string]interface{}) (Project, error) {
	obj, err := callObject(ctx, m.obj, "LoadCloudProject", settings)
	return Project{obj: obj}, err
}

// MediaStorage wraps the host media storage object.
type MediaStorage struct{ obj Object }

func (s MediaStorage) Valid() bool { return s.obj != nil }
func (s MediaStorage) raw() Object { return s.obj }

func (s MediaStorage) MountedVolumes(ctx context.Context) ([]string, error) {
	return callStrings(ctx, s.obj, "GetMountedVolumeList")
}

func (s MediaStorage) SubFolderList(ctx context.Context, path string) ([]string, error) {
	return callStrings(ctx, s.obj, "GetSubFolderList", path)
}

func (s MediaStorage) FileList(ctx context.Context, path string) ([]string, error) {
	return callStrings(ctx, s.obj, "GetFileList", path)
}

func (s MediaStorage) RevealInStorage(ctx context.Context, path string) (bool, error) {
	return callBool(ctx, s.obj, "RevealInStorage", path)
}

func (s MediaStorage) AddItemsToMediaPool(ctx context.Context, paths []string) ([]MediaPoolItem, error) {
	objects, err := callObjects(ctx, s.obj, "AddItemListToMediaPool", toAnySlice(paths))
	return wrapClips(objects), err
}

func (s MediaStorage) AddClipMattesToMediaPool(ctx context.Context, clip MediaPoolItem, paths []string) (bool, error) {
	return callBool(ctx, s.obj, "AddClipMattesToMediaPool", clip.raw(), toAnySlice(paths))
}

func (s MediaStorage) AddTimelineMattesToMediaPool(ctx context.Context, folder Folder, paths []string) (bool, error) {
	return callBool(ctx, s.obj, "AddTimelineMattesToMediaPool", folder.raw(), toAnySlice(paths))
}

func toAnySlice(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
