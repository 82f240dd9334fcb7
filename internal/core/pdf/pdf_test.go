package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/text"

	"github.com/joseph-ayodele/docextract/internal/core/extract"
)

func frag(s string, x, y float64) text.TextFragment {
	return text.TextFragment{Text: s, X: x, Y: y, Width: float64(len(s)) * 5, Height: 10, FontSize: 10}
}

func TestFragmentsToText(t *testing.T) {
	frags := []text.TextFragment{
		frag("world", 60, 700),
		frag("Hello", 10, 701),
		frag("second", 10, 680),
		frag("   ", 80, 680),
	}
	got := fragmentsToText(frags)
	if got != "Hello world\nsecond" {
		t.Fatalf("fragmentsToText = %q", got)
	}
	if fragmentsToText(nil) != "" {
		t.Fatal("empty input should give empty text")
	}
}

func TestFillGrid(t *testing.T) {
	// two rows, two columns; rows stored top-down as the grid detector does
	tg := model.NewTableGrid()
	tg.Rows = []float64{700, 680, 660}
	tg.Cols = []float64{0, 100, 200}

	frags := []text.TextFragment{
		frag("Name", 10, 685),
		frag("Age", 110, 685),
		frag("Ana", 10, 665),
		frag("Maria", 30, 665),
		frag("30", 110, 665),
		frag("outside", 300, 665),
	}
	got := fillGrid(tg, frags)
	want := extract.Grid{{"Name", "Age"}, {"Ana Maria", "30"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("fillGrid = %q, want %q", got, want)
	}
}

func TestSnapColumns(t *testing.T) {
	frags := []model.TextFragment{
		{Text: "a", BBox: model.BBox{X: 100, Width: 10}},
		{Text: "b", BBox: model.BBox{X: 112, Width: 30}},
		{Text: "c", BBox: model.BBox{X: 200, Width: 10}},
	}
	got := snapColumns(frags, 15)
	if got[0].BBox.X != 100 || got[1].BBox.X != 100 {
		t.Errorf("near lefts not snapped: %v %v", got[0].BBox, got[1].BBox)
	}
	if got[0].BBox.Right() != 142 || got[1].BBox.Right() != 142 {
		t.Errorf("cluster right edge = %v/%v, want 142", got[0].BBox.Right(), got[1].BBox.Right())
	}
	if got[2].BBox.X != 200 || got[2].BBox.Width != 10 {
		t.Errorf("distant column changed: %v", got[2].BBox)
	}
	if frags[1].BBox.X != 112 {
		t.Error("input slice mutated")
	}
	if same := snapColumns(frags, 0); !reflect.DeepEqual(same, frags) {
		t.Error("zero tolerance must be a no-op")
	}
}

type fileRunner struct {
	args []string
	err  error
}

func (r *fileRunner) Run(_ context.Context, _ string, _ *slog.Logger, args ...string) ([]byte, []byte, error) {
	r.args = args
	if r.err != nil {
		return nil, []byte("boom"), r.err
	}
	prefix := args[len(args)-1]
	return nil, nil, os.WriteFile(prefix+".png", []byte("\x89PNG"), 0o644)
}

func TestRasterize(t *testing.T) {
	r := &fileRunner{}
	d := &Document{path: "in.pdf", pages: 3, cfg: Config{Pdftoppm: "pdftoppm"}, runner: r, logger: slog.Default()}

	png, err := d.Rasterize(context.Background(), 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if string(png) != "\x89PNG" {
		t.Errorf("png = %q", png)
	}
	joined := strings.Join(r.args, " ")
	if !strings.HasPrefix(joined, "-f 2 -l 2 -r 144 -png -singlefile in.pdf ") {
		t.Errorf("args = %q", joined)
	}
	if _, err := os.Stat(filepath.Dir(r.args[len(r.args)-1])); !os.IsNotExist(err) {
		t.Error("temp dir not removed")
	}

	if _, err := d.Rasterize(context.Background(), 3, 2); err == nil {
		t.Error("out of range page should fail")
	}
	d.runner = &fileRunner{err: errors.New("exit status 1")}
	if _, err := d.Rasterize(context.Background(), 0, 2); err == nil {
		t.Error("runner failure should surface")
	}
}

func TestOpenMissingFile(t *testing.T) {
	o := NewOpener(Config{}, nil)
	if _, err := o.Open(context.Background(), filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Fatal("expected error")
	}
}

func TestFindTablesWithoutParser(t *testing.T) {
	d := &Document{pages: 1, logger: slog.Default()}
	_, err := d.FindTables(context.Background(), 0, extract.TableSettings{Mode: extract.TableModeLines})
	if !errors.Is(err, errNoStructure) {
		t.Fatalf("err = %v", err)
	}
}

func TestImageExt(t *testing.T) {
	for in, want := range map[string]string{"jpg": "jpg", "JPEG": "jpg", ".png": "png", "": "png", "tif": "tif"} {
		if got := imageExt(in); got != want {
			t.Errorf("imageExt(%q) = %q, want %q", in, got, want)
		}
	}
}

// buildPDF writes a PDF whose objects are numbered 1..len(objs) in order.
// Object 1 must be the catalog.
func buildPDF(t *testing.T, objs ...string) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, o := range objs {
		offsets[i] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", i+1, o)
	}
	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n0000000000 65535 f \n", len(objs)+1)
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)

	path := filepath.Join(t.TempDir(), "fixture.pdf")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func stream(dict, data string) string {
	return fmt.Sprintf("<< %s /Length %d >>\nstream\n%s\nendstream", dict, len(data), data)
}

func show(s string, x, y int) string {
	return fmt.Sprintf("BT /F1 10 Tf %d %d Td (%s) Tj ET\n", x, y, s)
}

// reportPDF has three pages: prose, a bordered 2x3 table and the same table
// without rulings.
func reportPDF(t *testing.T) string {
	t.Helper()
	prose := show("Quarterly report", 72, 720)

	ruled := "0.5 w\n" +
		"100 690 m 300 690 l 100 660 m 300 660 l 100 630 m 300 630 l 100 600 m 300 600 l\n" +
		"100 600 m 100 690 l 200 600 m 200 690 l 300 600 m 300 690 l S\n" +
		show("Name", 110, 670) + show("Age", 210, 670) +
		show("Ana", 110, 640) + show("30", 210, 640) +
		show("Bob", 110, 610) + show("25", 210, 610)

	unruled := show("Name", 100, 700) + show("Age", 140, 700) +
		show("Ana", 100, 690) + show("30", 140, 690) +
		show("Bob", 100, 680) + show("25", 140, 680)

	page := func(contents int) string {
		return fmt.Sprintf("<< /Type /Page /Parent 2 0 R /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", contents)
	}
	return buildPDF(t,
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [4 0 R 5 0 R 6 0 R] /Count 3 /MediaBox [0 0 612 792] >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
		page(7), page(8), page(9),
		stream("", prose), stream("", ruled), stream("", unruled),
	)
}

func openFixture(t *testing.T, path string) *Document {
	t.Helper()
	doc, err := NewOpener(Config{}, nil).Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = doc.Close() })
	d, ok := doc.(*Document)
	if !ok || d.tab == nil {
		t.Fatal("expected the structural parser to open the fixture")
	}
	return d
}

var (
	lineSettings = extract.TableSettings{Mode: extract.TableModeLines, SnapTolerance: 3}
	textSettings = extract.TableSettings{Mode: extract.TableModeText, SnapTolerance: 3, IntersectionXTolerance: 15}
)

func TestFindTablesRuledPage(t *testing.T) {
	d := openFixture(t, reportPDF(t))
	ctx := context.Background()
	if d.PageCount() != 3 {
		t.Fatalf("pages = %d", d.PageCount())
	}

	grids, err := d.FindTables(ctx, 1, lineSettings)
	if err != nil {
		t.Fatal(err)
	}
	want := []extract.Grid{{{"Name", "Age"}, {"Ana", "30"}, {"Bob", "25"}}}
	if !reflect.DeepEqual(grids, want) {
		t.Fatalf("lines tables = %q, want %q", grids, want)
	}

	grids, err = d.FindTables(ctx, 0, lineSettings)
	if err != nil || len(grids) != 0 {
		t.Fatalf("prose page: grids=%q err=%v", grids, err)
	}
	got, err := d.PageText(ctx, 0)
	if err != nil || got != "Quarterly report" {
		t.Fatalf("PageText = %q, %v", got, err)
	}
}

// nonEmpty drops blank cells; whitespace detection may add gutter columns.
func nonEmpty(g extract.Grid) [][]string {
	out := make([][]string, 0, len(g))
	for _, row := range g {
		var cells []string
		for _, c := range row {
			if s := strings.TrimSpace(c); s != "" {
				cells = append(cells, s)
			}
		}
		out = append(out, cells)
	}
	return out
}

func TestFindTablesUnruledPageNeedsTextMode(t *testing.T) {
	d := openFixture(t, reportPDF(t))
	ctx := context.Background()

	grids, err := d.FindTables(ctx, 2, lineSettings)
	if err != nil {
		t.Fatal(err)
	}
	if len(grids) != 0 {
		t.Fatalf("lines mode on an unruled page = %q, want none", grids)
	}

	grids, err = d.FindTables(ctx, 2, textSettings)
	if err != nil {
		t.Fatal(err)
	}
	if len(grids) != 1 {
		t.Fatalf("text tables = %q, want one", grids)
	}
	want := [][]string{{"Name", "Age"}, {"Ana", "30"}, {"Bob", "25"}}
	if got := nonEmpty(grids[0]); !reflect.DeepEqual(got, want) {
		t.Fatalf("text table = %q, want %q", got, want)
	}

	text, err := d.PageText(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if text != "Name Age\nAna 30\nBob 25" {
		t.Errorf("PageText = %q", text)
	}
}

func TestImagesKeepsDuplicatesAndIndexes(t *testing.T) {
	img := func(w, h int, data string) string {
		return stream(fmt.Sprintf("/Type /XObject /Subtype /Image /Width %d /Height %d /ColorSpace /DeviceGray /BitsPerComponent 8", w, h), data)
	}
	pixels := "\x00\xff\xff\x00"
	path := buildPDF(t,
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 /MediaBox [0 0 612 792] >>",
		"<< /Type /Page /Parent 2 0 R /Resources << /XObject << /Im0 4 0 R /Im1 5 0 R /Im2 6 0 R >> >> /Contents 7 0 R >>",
		// declares 4x4 pixels but carries 2x2
		img(4, 4, pixels),
		img(2, 2, pixels),
		img(2, 2, pixels),
		stream("", "q 20 0 0 20 60 700 cm /Im0 Do Q\nq 20 0 0 20 100 700 cm /Im1 Do Q\nq 20 0 0 20 140 700 cm /Im2 Do Q\n"),
	)
	d := openFixture(t, path)

	images, err := d.Images(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(images) != 2 {
		t.Fatalf("images = %d, want 2", len(images))
	}
	for i, want := range []struct {
		index int
		name  string
	}{{1, "Im1"}, {2, "Im2"}} {
		got := images[i]
		if got.Index != want.index || got.Name != want.name || got.Ext != "png" {
			t.Errorf("image %d = {%d %s %s}, want {%d %s png}", i, got.Index, got.Name, got.Ext, want.index, want.name)
		}
		if !bytes.HasPrefix(got.Data, []byte("\x89PNG")) {
			t.Errorf("image %d is not a png", i)
		}
	}
	if !bytes.Equal(images[0].Data, images[1].Data) {
		t.Error("identical image objects should decode to identical bytes")
	}

	if _, err := d.Images(context.Background(), 1); err == nil {
		t.Error("out of range page should fail")
	}
}
