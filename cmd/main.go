package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"svg2icons/contracts"
	"svg2icons/files_manager"
	"svg2icons/ico_writer"
	"svg2icons/proofsheet"
	"svg2icons/rasterizer"
)

type InputFlags = contracts.InputFlags

func main() {
	svgPath := flag.String("svg", filepath.Join("assets", "icons", "icon.svg"), "Input SVG file, or a directory of SVG files")
	outputDir := flag.String("output", "", "Output directory for PNG icons (default: the input's directory)")
	sizesCSV := flag.String("sizes", defaultSizesCSV(), "Comma-separated icon sizes in pixels")
	makeICO := flag.Bool("ico", false, "Also bundle the rendered sizes into a multi-resolution .ico file")
	makeSheet := flag.Bool("sheet", false, "Also write a PDF proof sheet of the rendered icons")
	checkOnly := flag.Bool("check", false, "Verify the rendering backend is available and exit")
	flag.Parse()

	renderer := rasterizer.NewRenderer()

	if *checkOnly {
		if err := renderer.Ensure(); err != nil {
			fmt.Printf("[ERROR]: rendering backend %s unavailable: %v\n", renderer.Name(), err)
			os.Exit(1)
		}
		fmt.Printf("Rendering backend %s is available.\n", renderer.Name())
		os.Exit(0)
	}

	sizes, err := parseSizes(*sizesCSV)
	if err != nil {
		fmt.Printf("[ERROR]: %v\n", err)
		os.Exit(1)
	}

	args := InputFlags{
		SVGPath:   *svgPath,
		OutputDir: *outputDir,
		Sizes:     sizes,
		MakeICO:   *makeICO,
		MakeSheet: *makeSheet,
	}

	info, err := os.Stat(args.SVGPath)
	if err != nil {
		fmt.Printf("[ERROR]: SVG file not found: %s\n", args.SVGPath)
		os.Exit(1)
	}

	startTime := time.Now()

	if !info.IsDir() {
		if err := convertOne(renderer, args, args.SVGPath); err != nil {
			fmt.Printf("[ERROR]: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Conversion completed successfully.")
		fmt.Printf("Total time taken: %s\n", time.Since(startTime))
		return
	}

	svgFiles, _, err := files_manager.GetSVGPaths(args.SVGPath)
	if err != nil {
		fmt.Printf("[ERROR]: %v\n", err)
		os.Exit(1)
	}
	if len(svgFiles) == 0 {
		fmt.Println("No SVG files found in the input directory.")
		os.Exit(0)
	}

	maxConversions := max(runtime.NumCPU()-1, 1)

	sem := make(chan struct{}, maxConversions)

	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := 0

	fmt.Println("Starting conversion...")

	for _, svgFile := range svgFiles {
		wg.Add(1)
		go func(svgFile string) {
			defer wg.Done()

			sem <- struct{}{}        // Acquire a token
			defer func() { <-sem }() // Release the token

			if err := convertOne(renderer, args, svgFile); err != nil {
				fmt.Printf("[ERROR]: %s: %v\n", svgFile, err)
				mu.Lock()
				failed++
				mu.Unlock()
			}
		}(svgFile)
	}
	wg.Wait()

	if failed > 0 {
		fmt.Printf("Conversion finished with %d failed file(s).\n", failed)
		os.Exit(1)
	}
	fmt.Println("Conversion completed successfully.")
	fmt.Printf("Total time taken: %s\n", time.Since(startTime))
}

func convertOne(renderer contracts.Renderer, args InputFlags, svgFile string) error {
	outDir := args.OutputDir
	if outDir == "" {
		outDir = filepath.Dir(svgFile)
	}

	set := contracts.IconSet{
		SourcePath: svgFile,
		OutputDir:  outDir,
		BaseName:   files_manager.IconBaseName(svgFile),
		Sizes:      args.Sizes,
	}

	fmt.Printf("Converting: %s\n", svgFile)
	results, err := rasterizer.Convert(renderer, set)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return nil
	}

	if args.MakeICO {
		if err := ico_writer.WriteICO(files_manager.ICOPath(outDir, set.BaseName), results); err != nil {
			return err
		}
	}
	if args.MakeSheet {
		if err := proofsheet.WriteSheet(files_manager.SheetPath(outDir, set.BaseName), set.BaseName, results); err != nil {
			return err
		}
	}
	return nil
}

func defaultSizesCSV() string {
	parts := make([]string, 0, len(contracts.DefaultSizes))
	for _, sizePx := range contracts.DefaultSizes {
		parts = append(parts, strconv.Itoa(sizePx))
	}
	return strings.Join(parts, ",")
}

func parseSizes(csv string) ([]int, error) {
	parts := strings.Split(csv, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sizePx, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %v", part, err)
		}
		if sizePx <= 0 {
			return nil, fmt.Errorf("invalid size %d: sizes must be positive", sizePx)
		}
		sizes = append(sizes, sizePx)
	}
	return sizes, nil
}
