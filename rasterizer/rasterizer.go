package rasterizer

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"svg2icons/contracts"
	"svg2icons/files_manager"
	"svg2icons/utils"
)

type renderTask struct {
	sizePx    int
	sizeIndex int
}

// NewRenderer returns the rendering backend selected at build time.
func NewRenderer() contracts.Renderer {
	return newRenderer()
}

// Convert renders set.SourcePath at every requested size and writes one
// PNG per size into set.OutputDir, overwriting existing files. Results
// come back ordered as the sizes were given. On failure the first error
// is returned and already written files are left in place.
func Convert(renderer contracts.Renderer, set contracts.IconSet) ([]contracts.RenderResult, error) {
	if err := files_manager.CheckSourceFile(set.SourcePath); err != nil {
		return nil, err
	}
	if err := files_manager.EnsureOutputDir(set.OutputDir); err != nil {
		return nil, err
	}
	for _, sizePx := range set.Sizes {
		if sizePx <= 0 {
			return nil, fmt.Errorf("invalid icon size %d: sizes must be positive", sizePx)
		}
	}
	if err := renderer.Ensure(); err != nil {
		return nil, fmt.Errorf("rendering backend %s unavailable: %v", renderer.Name(), err)
	}
	if len(set.Sizes) == 0 {
		return nil, nil
	}

	svg, err := os.ReadFile(set.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("cannot read SVG file %s: %v", set.SourcePath, err)
	}

	numWorkers := min(len(set.Sizes), max(runtime.NumCPU()-1, 1))

	taskChan := make(chan renderTask)
	results := make([]contracts.RenderResult, len(set.Sizes))
	errs := make([]error, len(set.Sizes))

	wg := &sync.WaitGroup{}
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskChan {
				result, err := renderOne(renderer, svg, set, task)
				if err != nil {
					errs[task.sizeIndex] = err
					continue
				}
				results[task.sizeIndex] = result
			}
		}()
	}

	for i, sizePx := range set.Sizes {
		taskChan <- renderTask{sizePx: sizePx, sizeIndex: i}
	}
	close(taskChan)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func renderOne(renderer contracts.Renderer, svg []byte, set contracts.IconSet, task renderTask) (contracts.RenderResult, error) {
	img, err := renderer.Render(svg, task.sizePx)
	if err != nil {
		return contracts.RenderResult{}, fmt.Errorf("rendering %s at %dpx: %v", set.SourcePath, task.sizePx, err)
	}

	outPath := files_manager.OutputPath(set.OutputDir, set.BaseName, task.sizePx)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return contracts.RenderResult{}, fmt.Errorf("encoding %s: %v", outPath, err)
	}

	w, h, err := utils.PNGPixelSize(buf.Bytes())
	if err != nil {
		return contracts.RenderResult{}, fmt.Errorf("verifying %s: %v", outPath, err)
	}
	if w != task.sizePx || h != task.sizePx {
		return contracts.RenderResult{}, fmt.Errorf("rendered %s is %dx%d, want %dx%d", outPath, w, h, task.sizePx, task.sizePx)
	}

	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return contracts.RenderResult{}, fmt.Errorf("writing %s: %v", outPath, err)
	}

	fmt.Printf("  Created: %s (%dx%d)\n", filepath.Base(outPath), task.sizePx, task.sizePx)

	return contracts.RenderResult{
		Img:        img,
		OutputPath: outPath,
		SizePx:     task.sizePx,
		SizeIndex:  task.sizeIndex,
	}, nil
}
