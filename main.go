package main

import (
	"log"

	"github.com/joho/godotenv"

	"urmonov-web/cmd"
)

func main() {
	// .env faylini yuklash (mavjud bo'lmasa environment ishlatiladi)
	if err := godotenv.Load(); err != nil {
		log.Println(".env topilmadi, environment o'zgaruvchilari ishlatiladi")
	}

	cmd.Execute()
}
