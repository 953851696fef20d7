package catalog

import "icon-curator/feature/curation"

// TableName is the table holding the recorded catalog.
const TableName = "curated_icons"

// Entry is one recorded file of the output tree.
type Entry struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	FileName   string `gorm:"column:file_name;size:255;index:idx_style_file,unique" json:"file_name"`
	Icon       string `gorm:"column:icon;size:255" json:"icon"`
	Style      string `gorm:"column:style;size:64;index:idx_style_file,unique" json:"style"`
	Size       int    `gorm:"column:size" json:"size"`
	SourcePath string `gorm:"column:source_path;size:1024" json:"source_path"`
	FilledFrom string `gorm:"column:filled_from;size:64" json:"filled_from,omitempty"`
}

// TableName implements the gorm tabler interface.
func (Entry) TableName() string {
	return TableName
}

// Columns lists the columns the store relies on.
var Columns = []string{"id", "file_name", "icon", "style", "size", "source_path", "filled_from"}

// EntriesFromReport converts the output files of a run into catalog rows.
// Filled files keep the size of the donor asset.
func EntriesFromReport(report *curation.Report) []Entry {
	files := report.Entries()
	entries := make([]Entry, 0, len(files))
	for _, f := range files {
		entries = append(entries, FromOutputEntry(f))
	}
	return entries
}

// FromOutputEntry converts a single output file.
func FromOutputEntry(f curation.OutputEntry) Entry {
	return Entry{
		FileName:   f.File,
		Icon:       f.Icon,
		Style:      f.Style,
		Size:       f.Size,
		SourcePath: f.Source,
		FilledFrom: f.FilledFrom,
	}
}
