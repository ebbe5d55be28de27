package recognition

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// probeDuration возвращает длительность видео в секундах через ffprobe
func probeDuration(videoPath string) (float64, error) {
	out, err := ffmpeg.Probe(videoPath)
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed for %s: %w", videoPath, err)
	}

	var probe struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(out), &probe); err != nil {
		return 0, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	duration, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse video duration %q: %w", probe.Format.Duration, err)
	}
	return duration, nil
}

// extractFrames извлекает count равномерно распределенных по времени кадров
// в каталог dir и возвращает пути извлеченных кадров. Кадры масштабируются
// до ширины 640. Сбой отдельного кадра не прерывает извлечение остальных.
func extractFrames(videoPath, dir string, count int) ([]string, error) {
	duration, err := probeDuration(videoPath)
	if err != nil {
		return nil, err
	}

	frames := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		ts := duration * float64(i) / float64(count+1)
		out := filepath.Join(dir, fmt.Sprintf("frame-%d.png", i))

		err := ffmpeg.Input(videoPath, ffmpeg.KwArgs{"ss": fmt.Sprintf("%.3f", ts)}).
			Output(out, ffmpeg.KwArgs{"vframes": 1, "vf": "scale=640:-2"}).
			OverWriteOutput().
			Silent(true).
			Run()
		if err != nil {
			continue
		}
		frames = append(frames, out)
	}

	if len(frames) == 0 {
		return nil, fmt.Errorf("no frames extracted from %s", videoPath)
	}
	return frames, nil
}

// copyFile копирует файл кадра в постоянное хранилище снапшотов
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot dir: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy snapshot: %w", err)
	}
	return nil
}
