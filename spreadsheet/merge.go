// Package spreadsheet merges xlsx workbooks. Only cell values are
// carried over.
package spreadsheet

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Merge appends every sheet of src to dst. A sheet whose name already
// exists in dst gets a numeric suffix.
func Merge(dst, src *excelize.File) error {
	for _, sheet := range src.GetSheetList() {
		name, err := uniqueSheetName(dst, sheet)
		if err != nil {
			return err
		}
		if _, err := dst.NewSheet(name); err != nil {
			return errors.Wrapf(err, "cannot create sheet %q", name)
		}

		rows, err := src.GetRows(sheet)
		if err != nil {
			return errors.Wrapf(err, "cannot read sheet %q", sheet)
		}

		for i, row := range rows {
			if len(row) == 0 {
				continue
			}

			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				return errors.Wrapf(err, "cannot address row %d of sheet %q", i+1, sheet)
			}

			values := make([]interface{}, len(row))
			for j, v := range row {
				values[j] = v
			}
			if err := dst.SetSheetRow(name, cell, &values); err != nil {
				return errors.Wrapf(err, "cannot write row %d of sheet %q", i+1, name)
			}
		}
	}
	return nil
}

// MergeFiles combines the workbooks at paths into a single workbook
// written to out.
func MergeFiles(out string, paths ...string) error {
	if len(paths) == 0 {
		return errors.New("no input files")
	}

	dst := excelize.NewFile()
	defer func() { _ = dst.Close() }()

	// move the default sheet out of the way so source sheets keep
	// their names, then drop it once real sheets exist
	const placeholder = "__merge_placeholder__"
	if err := dst.SetSheetName("Sheet1", placeholder); err != nil {
		return errors.Wrap(err, "cannot rename placeholder sheet")
	}

	for _, path := range paths {
		src, err := excelize.OpenFile(path)
		if err != nil {
			return errors.Wrapf(err, "cannot open %q", path)
		}

		err = Merge(dst, src)
		if closeErr := src.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return errors.Wrapf(err, "cannot merge %q", path)
		}
	}

	if len(dst.GetSheetList()) > 1 {
		if err := dst.DeleteSheet(placeholder); err != nil {
			return errors.Wrap(err, "cannot delete placeholder sheet")
		}
	}

	return errors.Wrapf(dst.SaveAs(out), "cannot save %q", out)
}

func uniqueSheetName(f *excelize.File, name string) (string, error) {
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return "", errors.Wrapf(err, "invalid sheet name %q", name)
	}
	if idx == -1 {
		return name, nil
	}

	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s (%d)", name, i)
		idx, err := f.GetSheetIndex(candidate)
		if err != nil {
			return "", errors.Wrapf(err, "invalid sheet name %q", candidate)
		}
		if idx == -1 {
			return candidate, nil
		}
	}
}
