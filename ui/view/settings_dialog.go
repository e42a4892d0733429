package view

import (
	"log/slog"
	"strconv"
	"strings"

	"cropstudio/config"
	"cropstudio/domain/export"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// SettingsDialog is the modal-ish export settings window. It owns its
// widgets and writes back into *config.Config on Save.
type SettingsDialog struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
	onSaved func()

	win          *ToplevelWidget
	modeSelect   *TComboboxWidget
	fields       map[string]*TextWidget
	previewLabel *LabelWidget
	overwriteBtn *CheckbuttonWidget
	overwrite    bool // mirrors the checkbutton, Tk state is write-only here
}

var folderModes = []string{
	string(export.FolderSubfolder),
	string(export.FolderSame),
	string(export.FolderCustom),
}

func NewSettingsDialog(cfg *config.Config, cfgPath string, logger *slog.Logger, onSaved func()) *SettingsDialog {
	return &SettingsDialog{cfg: cfg, cfgPath: cfgPath, logger: logger, onSaved: onSaved, fields: map[string]*TextWidget{}}
}

// OpenOrFocus shows the dialog, creating it on first use per open.
func (d *SettingsDialog) OpenOrFocus() {
	if d == nil || d.cfg == nil {
		return
	}
	if d.win != nil {
		WmGeometry(d.win.Window)
		return
	}
	win := App.Toplevel()
	win.WmTitle("Export Settings")
	d.win = win
	row := 0

	Grid(win.Label(Txt("Save location"), Anchor("w")), Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.2m"))
	d.modeSelect = win.TCombobox(Values(folderModes), Width(16), State("readonly"))
	Grid(d.modeSelect, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.2m"))
	for i, m := range folderModes {
		if m == d.cfg.FolderMode {
			d.modeSelect.Current(i)
		}
	}
	row++

	makeRow := func(id, label, value string) {
		Grid(win.Label(Txt(label), Anchor("w")), Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.2m"))
		w := win.Text(Height(1), Width(28))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.2m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		d.fields[id] = w
		row++
	}
	makeRow("subfolder", "Subfolder name", d.cfg.Subfolder)
	makeRow("customFolder", "Custom folder (blank = source)", d.cfg.CustomFolder)
	browse := win.Button(Txt("Browse..."), Command(func() {
		if dir := ChooseDirectory(Title("Choose Output Folder")); dir != "" {
			if w := d.fields["customFolder"]; w != nil {
				w.Delete("1.0", END)
				w.Insert("1.0", dir)
			}
		}
	}))
	Grid(browse, Row(row), Column(1), Sticky("w"), Padx("0.4m"), Pady("0.2m"))
	row++

	makeRow("pattern", "File name pattern", d.cfg.Pattern)
	d.previewLabel = win.Label(Txt(""), Anchor("w"))
	Grid(d.previewLabel, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.2m"))
	row++
	if w := d.fields["pattern"]; w != nil {
		Bind(w, "<KeyRelease>", Command(func() { d.updatePreview() }))
	}
	d.updatePreview()

	makeRow("quality", "JPEG quality (1-100)", strconv.Itoa(d.cfg.JPEGQuality))

	d.overwrite = d.cfg.Overwrite
	d.overwriteBtn = win.Checkbutton(Txt("Overwrite source file"), Command(func() { d.toggleOverwrite() }))
	Grid(d.overwriteBtn, Row(row), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"), Pady("0.2m"))
	if d.overwrite {
		d.overwriteBtn.Select()
	} else {
		d.overwriteBtn.Deselect()
	}
	row++

	save := win.Button(Txt("Save"), Command(func() { d.save() }))
	Grid(save, Row(row), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	cancel := win.Button(Txt("Cancel"), Command(func() { d.close() }))
	Grid(cancel, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	Bind(win, "<Escape>", Command(func() { d.close() }))
}

// toggleOverwrite flips the mirror; enabling asks for confirmation because
// overwriting replaces the source file in place.
func (d *SettingsDialog) toggleOverwrite() {
	if d.overwrite {
		d.overwrite = false
		return
	}
	answer := MessageBox(
		Title("Overwrite Source"),
		Msg("Overwrite mode replaces the original file with the crop. This cannot be undone. Enable it?"),
		Type("yesno"), Icon("warning"),
	)
	if answer == "yes" {
		d.overwrite = true
		return
	}
	d.overwrite = false
	if d.overwriteBtn != nil {
		d.overwriteBtn.Deselect()
	}
}

func (d *SettingsDialog) updatePreview() {
	if d.previewLabel == nil {
		return
	}
	pattern := strings.TrimSpace(d.text("pattern"))
	if !export.ValidPattern(pattern) {
		d.previewLabel.Configure(Txt("invalid pattern, default will be used"))
		return
	}
	d.previewLabel.Configure(Txt("e.g. " + export.FormatStem(pattern, "image", 1, ".png") + ".png"))
}

func (d *SettingsDialog) text(id string) string {
	w := d.fields[id]
	if w == nil {
		return ""
	}
	return strings.TrimSpace(strings.Join(w.Get("1.0", END), ""))
}

func (d *SettingsDialog) save() {
	cfg := *d.cfg // copy, applied only when valid
	if idxStr := d.modeSelect.Current(nil); idxStr != "" {
		if idx, err := strconv.Atoi(idxStr); err == nil && idx >= 0 && idx < len(folderModes) {
			cfg.FolderMode = folderModes[idx]
		}
	}
	cfg.Subfolder = d.text("subfolder")
	cfg.CustomFolder = d.text("customFolder")
	cfg.Pattern = d.text("pattern")
	if q, err := strconv.Atoi(d.text("quality")); err == nil {
		cfg.JPEGQuality = q
	}
	cfg.Overwrite = d.overwrite
	_ = cfg.Validate()

	*d.cfg = cfg
	if err := d.cfg.Save(d.cfgPath); err != nil {
		d.logger.Error("settings save failed", "path", d.cfgPath, "error", err)
	} else {
		d.logger.Info("settings saved", "path", d.cfgPath)
	}
	if d.onSaved != nil {
		d.onSaved()
	}
	d.close()
}

func (d *SettingsDialog) close() {
	if d.win != nil {
		Destroy(d.win)
		d.win = nil
	}
	d.fields = map[string]*TextWidget{}
	d.modeSelect = nil
	d.previewLabel = nil
	d.overwriteBtn = nil
}
