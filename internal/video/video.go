package video

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/1F47E/go-pixelreel/internal/logger"
)

// call ffmpeg to extract video frames as png, scaled and resampled to
// the target geometry and frame rate
func ExtractFrames(ctx context.Context, filename, dir string, width, height, fps int) error {
	framesPath := dir + "/out_%08d.png"
	filter := fmt.Sprintf("fps=%d,scale=%d:%d", fps, width, height)
	cmdStr := fmt.Sprintf("ffmpeg -y -i %s -vf %s %s", filename, filter, framesPath)
	cmdList := strings.Split(cmdStr, " ")
	logger.Log.Debugf("Running ffmpeg command: %s\n", cmdStr)
	cmd := exec.CommandContext(ctx, cmdList[0], cmdList[1:]...)
	return cmd.Run()
}
