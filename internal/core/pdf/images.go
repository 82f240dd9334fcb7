package pdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/joseph-ayodele/docextract/internal/core/extract"
)

// imageSource lazily loads a pdfcpu context the first time images are asked for.
// The context is read and validated but never optimized: optimization folds
// byte-identical image objects into one.
type imageSource struct {
	path string
	once sync.Once
	ctx  *pdfmodel.Context
	err  error
}

func (s *imageSource) load() (*pdfmodel.Context, error) {
	s.once.Do(func() {
		f, err := os.Open(s.path)
		if err != nil {
			s.err = err
			return
		}
		defer func() { _ = f.Close() }()
		ctx, err := api.ReadContext(f, pdfmodel.NewDefaultConfiguration())
		if err == nil {
			err = api.ValidateContext(ctx)
		}
		if err != nil {
			s.err = fmt.Errorf("pdfcpu read: %w", err)
			return
		}
		s.ctx = ctx
	})
	return s.ctx, s.err
}

// Images returns the page's embedded raster images in object order, with
// their native encoding (jpg for DCT streams, png otherwise). Images that
// cannot be decoded are skipped without shifting the others' Index.
func (d *Document) Images(_ context.Context, page int) ([]extract.EmbeddedImage, error) {
	if err := d.checkPage(page); err != nil {
		return nil, err
	}
	ctx, err := d.images.load()
	if err != nil {
		return nil, err
	}
	refs, err := pageImageRefs(ctx, page+1)
	if err != nil {
		return nil, fmt.Errorf("extract images page %d: %w", page+1, err)
	}

	out := make([]extract.EmbeddedImage, 0, len(refs))
	for idx, ref := range refs {
		img, err := pdfcpu.ExtractImage(ctx, ref.sd, false, ref.name, ref.objNr, false)
		if err != nil {
			d.logger.Warn("pdf.images.decode_failed", "page", page+1, "obj", ref.objNr, "error", err)
			continue
		}
		if img == nil {
			d.logger.Debug("pdf.images.unsupported", "page", page+1, "obj", ref.objNr)
			continue
		}
		var data []byte
		if img.Reader != nil {
			data, err = io.ReadAll(img)
			if err != nil {
				d.logger.Warn("pdf.images.read_failed", "page", page+1, "obj", ref.objNr, "error", err)
				continue
			}
		}
		out = append(out, extract.EmbeddedImage{
			Index: idx,
			Name:  img.Name,
			Data:  data,
			Ext:   imageExt(img.FileType),
		})
	}
	return out, nil
}

type imageRef struct {
	name  string
	objNr int
	sd    *types.StreamDict
}

// pageImageRefs lists the image XObjects in the page's resources ordered by
// object number. An object named twice is listed once.
func pageImageRefs(ctx *pdfmodel.Context, pageNr int) ([]imageRef, error) {
	_, _, inh, err := ctx.PageDict(pageNr, false)
	if err != nil {
		return nil, err
	}
	if inh == nil || inh.Resources == nil {
		return nil, nil
	}
	obj, ok := inh.Resources.Find("XObject")
	if !ok {
		return nil, nil
	}
	xobjs, err := ctx.DereferenceDict(obj)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(xobjs))
	for name := range xobjs {
		names = append(names, name)
	}
	sort.Strings(names)

	seen := make(map[int]struct{}, len(names))
	refs := make([]imageRef, 0, len(names))
	for _, name := range names {
		ir, ok := xobjs[name].(types.IndirectRef)
		if !ok {
			continue
		}
		nr := ir.ObjectNumber.Value()
		if _, dup := seen[nr]; dup {
			continue
		}
		sd, _, err := ctx.DereferenceStreamDict(ir)
		if err != nil || sd == nil {
			continue
		}
		if st := sd.Subtype(); st == nil || *st != "Image" {
			continue
		}
		seen[nr] = struct{}{}
		refs = append(refs, imageRef{name: name, objNr: nr, sd: sd})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].objNr < refs[j].objNr })
	return refs, nil
}

func imageExt(fileType string) string {
	ext := strings.ToLower(strings.TrimPrefix(fileType, "."))
	switch ext {
	case "":
		return "png"
	case "jpeg":
		return "jpg"
	default:
		return ext
	}
}
