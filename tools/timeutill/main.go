package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bbagher/tibiaclone/internal/version"
)

// Кадры протокола несут время в Unix-миллисекундах (поле timestamp
// у fireballCast). Утилита переводит их в читаемый вид и обратно.

const msLayout = "2006-01-02T15:04:05.000Z07:00"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "now":
		fmt.Println(time.Now().UnixMilli())
	case "format":
		if len(os.Args) < 3 {
			fmt.Println("Usage: timeutil format <unix_ms>")
			return
		}
		ts, err := strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil {
			fmt.Printf("Invalid timestamp: %v\n", err)
			return
		}
		fmt.Println(time.UnixMilli(ts).UTC().Format(msLayout))
	case "parse":
		if len(os.Args) < 3 {
			fmt.Println("Usage: timeutil parse <date_string>")
			return
		}
		t, err := time.Parse("2006-01-02 15:04:05", os.Args[2])
		if err != nil {
			fmt.Printf("Invalid date: %v\n", err)
			return
		}
		fmt.Println(t.UnixMilli())
	case "buildid":
		if len(os.Args) < 3 {
			fmt.Println("Usage: timeutil buildid <YYYY-MM-DD>")
			return
		}
		version.BuildDate = os.Args[2]
		id, err := version.CalculateBuildID()
		if err != nil {
			fmt.Printf("Invalid build date: %v\n", err)
			return
		}
		fmt.Println(id)
	default:
		printHelp()
	}
}

func printHelp() {
	fmt.Println(`Time Utility - конвертация игровых таймстампов (Unix миллисекунды)
Commands:
  now                    - текущее время в Unix-миллисекундах
  format <unix_ms>       - преобразовать таймстамп кадра в читаемый формат
  parse <date_string>    - преобразовать дату в Unix-миллисекунды (формат: YYYY-MM-DD HH:MM:SS)
  buildid <YYYY-MM-DD>   - номер сборки для даты (дни с эпохи проекта)`)
}
