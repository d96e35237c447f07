package tools

import "context"

// ProjectManagerTools covers project lifecycle, the project folder tree and
// database selection.
func ProjectManagerTools() []Tool {
	return []Tool{
		New("create_project", "project_manager", "Create a new project and open it.",
			[]ParamSpec{P("name", "string", "Project name.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Name string `json:"name"`
			}) Result {
				pm, ok := deps.Session.ProjectManager(ctx)
				if !ok {
					return Fail(ErrNoProjManager)
				}
				project, err := pm.CreateProject(ctx, p.Name)
				if err != nil {
					return FailErr(err)
				}
				if !project.Valid() {
					return Failf("Failed to create project: %s", p.Name)
				}
				return OK(p.Name)
			}),

		New("load_project", "project_manager", "Open an existing project by name.",
			[]ParamSpec{P("name", "string", "Project name.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Name string `json:"name"`
			}) Result {
				pm, ok := deps.Session.ProjectManager(ctx)
				if !ok {
					return Fail(ErrNoProjManager)
				}
				project, err := pm.LoadProject(ctx, p.Name)
				if err != nil {
					return FailErr(err)
				}
				if !project.Valid() {
					return Failf("Failed to load project: %s", p.Name)
				}
				return OK(p.Name)
			}),

		New("save_project", "project_manager", "Save the currently open project.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				pm, ok := deps.Session.ProjectManager(ctx)
				if !ok {
					return Fail(ErrNoProjManager)
				}
				if _, ok := deps.Session.CurrentProject(ctx); !ok {
					return Fail(ErrNoProject)
				}
				saved, err := pm.SaveProject(ctx)
				if err != nil {
					return FailErr(err)
				}
				if !saved {
					return Fail("Failed to save project")
				}
				return OK("saved")
			}),

		New("close_project", "project_manager", "Close the currently open project without saving.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				pm, ok := deps.Session.ProjectManager(ctx)
				if !ok {
					return Fail(ErrNoProjManager)
				}
				project, ok := deps.Session.CurrentProject(ctx)
				if !ok {
					return Fail(ErrNoProject)
				}
				closed, err := pm.CloseProject(ctx, project)
				if err != nil {
					return FailErr(err)
				}
				if !closed {
					return Fail("Failed to close project")
				}
				return OK("closed")
			}),

		New("delete_project", "project_manager", "Delete a project by name. The project must not be open.",
			[]ParamSpec{P("name", "string", "Project name.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Name string `json:"name"`
			}) Result {
				pm, ok := deps.Session.ProjectManager(ctx)
				if !ok {
					return Fail(ErrNoProjManager)
				}
				deleted, err := pm.DeleteProject(ctx, p.Name)
				if err != nil {
					return FailErr(err)
				}
				if !deleted {
					return Failf("Failed to delete project: %s", p.Name)
				}
				return OK(p.Name)
			}),

		New("archive_project", "project_manager", "Archive a project to a file.",
			[]ParamSpec{
				P("name", "string", "Project name.", true),
				P("path", "string", "Destination archive path.", true),
			},
			func(ctx context.Context, deps *Deps, p struct {
				Name string `json:"name"`
				Path string `json:"path"`
			}) Result {
				pm, ok := deps.Session.ProjectManager(ctx)
				if !ok {
					return Fail(ErrNoProjManager)
				}
				archived, err := pm.ArchiveProject(ctx, p.Name, p.Path)
				if err != nil {
					return FailErr(err)
				}
				if !archived {
					return Failf("Failed to archive project: %s", p.Name)
				}
				return OK(p.Path)
			}),

		New("import_project", "project_manager", "Import a project from a .drp file.",
			[]ParamSpec{P("path", "string", "Source project file path.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Path string `json:"path"`
			}) Result {
				if !fileExists(p.Path) {
					return Failf("File not found: %s", p.Path)
				}
				pm, ok := deps.Session.ProjectManager(ctx)
				if !ok {
					return Fail(ErrNoProjManager)
				}
				imported, err := pm.ImportProject(ctx, p.Path)
				if err != nil {
					return FailErr(err)
				}
				if !imported {
					return Failf("Failed to import project from: %s", p.Path)
				}
				return OK(p.Path)
			}),

		New("export_project", "project_manager", "Export a project to a .drp file.",
			[]ParamSpec{
				P("name", "string", "Project name.", true),
				P("path", "string", "Destination file path.", true),
				P("with_stills_and_luts", "boolean", "Include gallery stills and LUTs.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				Name              string `json:"name"`
				Path              string `json:"path"`
				WithStillsAndLUTs bool   `json:"with_stills_and_luts"`
			}) Result {
				pm, ok := deps.Session.ProjectManager(ctx)
				if !ok {
					return Fail(ErrNoProjManager)
				}
				exported, err := pm.ExportProject(ctx, p.Name, p.Path, p.WithStillsAndLUTs)
				if err != nil {
					return FailErr(err)
				}
				if !exported {
					return Failf("Failed to export project: %s", p.Name)
				}
				return OK(p.Path)
			}),

		New("get_project_list", "project_manager", "List project names in the current project folder.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				pm, ok := deps.Session.ProjectManager(ctx)
				if !ok {
					return Fail(ErrNoProjManager)
				}
				names, err := pm.ProjectList(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(names)
			}),

		New("get_folder_list", "project_manager", "List folder names in the current project folder.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				pm, ok := deps.Session.ProjectManager(ctx)
				if !ok {
					return Fail(ErrNoProjManager)
				}
				names, err := pm.FolderList(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(names)
			}),

		New("get_current_folder", "project_manager", "Get the name of the current project folder.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				pm, ok := deps.Session.ProjectManager(ctx)
				if !ok {
					return Fail(ErrNoProjManager)
				}
				name, err := pm.CurrentFolder(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(name)
			}),

		New("create_folder", "project_manager", "Create a project folder inside the current folder.",
			[]ParamSpec{P("name", "string", "Folder name.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Name string `json:"name"`
			}) Result {
				pm, ok := deps.Session.ProjectManager(ctx)
				if !ok {
					return Fail(ErrNoProjManager)
				}
				created, err := pm.CreateFolder(ctx, p.Name)
				if err != nil {
					return FailErr(err)
				}
				if !created {
					return Failf("Failed to create folder: %s", p.Name)
				}
				return OK(p.Name)
			}),

		New("delete_folder", "project_manager", "Delete a project folder inside the current folder.",
			[]ParamSpec{P("name", "string", "Folder name.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Name string `json:"name"`
			}) Result {
				pm, ok := deps.Session.ProjectManager(ctx)
				if !ok {
					return Fail(ErrNoProjManager)
				}
				deleted, err := pm.DeleteFolder(ctx, p.Name)
				if err != nil {
					return FailErr(err)
				}
				if !deleted {
					return Failf("Failed to delete folder: %s", p.Name)
				}
				return OK(p.Name)
			}),

		New("open_folder", "project_manager", "Open a project folder inside the current folder.",
			[]ParamSpec{P("name", "string", "Folder name.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Name string `json:"name"`
			}) Result {
				pm, ok := deps.Session.ProjectManager(ctx)
				if !ok {
					return Fail(ErrNoProjManager)
				}
				opened, err := pm.OpenFolder(ctx, p.Name)
				if err != nil {
					return FailErr(err)
				}
				if !opened {
					return Failf("Failed to open folder: %s", p.Name)
				}
				return OK(p.Name)
			}),

		New("goto_root_folder", "project_manager", "Navigate to the root project folder.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				pm, ok := deps.Session.ProjectManager(ctx)
				if !ok {
					return Fail(ErrNoProjManager)
				}
				moved, err := pm.GotoRootFolder(ctx)
				if err != nil {
					return FailErr(err)
				}
				if !moved {
					return Fail("Failed to navigate to root folder")
				}
				return OK("root")
			}),

		New("goto_parent_folder", "project_manager", "Navigate to the parent project folder.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				pm, ok := deps.Session.ProjectManager(ctx)
				if !ok {
					return Fail(ErrNoProjManager)
				}
				moved, err := pm.GotoParentFolder(ctx)
				if err != nil {
					return FailErr(err)
				}
				if !moved {
					return Fail("Failed to navigate to parent folder")
				}
				return OK("parent")
			}),

		New("get_current_database", "project_manager", "Get the connected project database info.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				pm, ok := deps.Session.ProjectManager(ctx)
				if !ok {
					return Fail(ErrNoProjManager)
				}
				info, err := pm.CurrentDatabase(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(info)
			}),

		New("get_database_list", "project_manager", "List the available project databases.",
			nil,
			func(ctx context.Context, deps *Deps, _ NoParams) Result {
				pm, ok := deps.Session.ProjectManager(ctx)
				if !ok {
					return Fail(ErrNoProjManager)
				}
				list, err := pm.DatabaseList(ctx)
				if err != nil {
					return FailErr(err)
				}
				return OK(list)
			}),

		New("set_current_database", "project_manager", "Switch to another project database.",
			[]ParamSpec{
				P("db_type", "string", "Database type: Disk or PostgreSQL.", true),
				P("db_name", "string", "Database name.", true),
				P("ip_address", "string", "Server address for PostgreSQL databases.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				DBType    string `json:"db_type"`
				DBName    string `json:"db_name"`
				IPAddress string `json:"ip_address"`
			}) Result {
				if p.DBType != "Disk" && p.DBType != "PostgreSQL" {
					return Failf("Invalid database type: %s. Valid types are: Disk, PostgreSQL", p.DBType)
				}
				pm, ok := deps.Session.ProjectManager(ctx)
				if !ok {
					return Fail(ErrNoProjManager)
				}
				info := map[string]interface{}{
					"DbType": p.DBType,
					"DbName": p.DBName,
				}
				if p.IPAddress != "" {
					info["IpAddress"] = p.IPAddress
				}
				switched, err := pm.SetCurrentDatabase(ctx, info)
				if err != nil {
					return FailErr(err)
				}
				if !switched {
					return Failf("Failed to switch to database: %s", p.DBName)
				}
				return OK(p.DBName)
			}),

		New("create_cloud_project", "project_manager", "Create a Blackmagic Cloud project.",
			[]ParamSpec{
				P("name", "string", "Project name.", true),
				P("location", "string", "Cloud library location.", false),
			},
			func(ctx context.Context, deps *Deps, p struct {
				Name     string `json:"name"`
				Location string `json:"location"`
			}) Result {
				pm, ok := deps.Session.ProjectManager(ctx)
				if !ok {
					return Fail(ErrNoProjManager)
				}
				settings := map[string]interface{}{"project_name": p.Name}
				if p.Location != "" {
					settings["project_media_path"] = p.Location
				}
				project, err := pm.CreateCloudProject(ctx, settings)
				if err != nil {
					return FailErr(err)
				}
				if !project.Valid() {
					return Failf("Failed to create cloud project: %s", p.Name)
				}
				return OK(p.Name)
			}),

		New("load_cloud_project", "project_manager", "Open a Blackmagic Cloud project.",
			[]ParamSpec{P("name", "string", "Project name.", true)},
			func(ctx context.Context, deps *Deps, p struct {
				Name string `json:"name"`
			}) Result {
				pm, ok := deps.Session.ProjectManager(ctx)
				if !ok {
					return Fail(ErrNoProjManager)
				}
				project, err := pm.LoadCloudProject(ctx, map[string]interface{}{"project_name": p.Name})
				if err != nil {
					return FailErr(err)
				}
				if !project.Valid() {
					return Failf("Failed to load cloud project: %s", p.Name)
				}
				return OK(p.Name)
			}),
	}
}
