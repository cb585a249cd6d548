package main

import (
	"fmt"
	"os/exec"
	"runtime"
)

// sendNotification fires a desktop notification plus a sound. All failures
// are swallowed: a missing notify-send must never break the session.
func sendNotification(title, message string) {
	playNotificationSound()

	switch runtime.GOOS {
	case "linux":
		exec.Command("notify-send", title, message).Run()
	case "darwin":
		exec.Command("osascript", "-e", fmt.Sprintf(`display notification "%s" with title "%s"`, message, title)).Run()
	case "windows":
		exec.Command("powershell", "-Command", fmt.Sprintf(`[System.Reflection.Assembly]::LoadWithPartialName('System.Windows.Forms'); [System.Windows.Forms.MessageBox]::Show('%s', '%s')`, message, title)).Run()
	}
}

func playNotificationSound() {
	switch runtime.GOOS {
	case "darwin":
		go exec.Command("afplay", "/System/Library/Sounds/Glass.aiff").Run()
	case "linux":
		go exec.Command("printf", "\a").Run()
	case "windows":
		go exec.Command("powershell", "-Command", "[console]::beep(800,200)").Run()
	}
}
