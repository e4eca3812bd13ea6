package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pattyshack/towhee/basic"
)

func main() {
	for _, fileName := range os.Args[1:] {
		fmt.Println("=====================")
		fmt.Println("File name:", fileName)
		fmt.Println("---------------------")
		content, err := os.ReadFile(fileName)
		if err != nil {
			fmt.Println("ReadFile error:", err)
			continue
		}

		stream := basic.NewLexer().LexString(fileName, string(content))
		for {
			token, err := stream.Next()
			if err != nil {
				if err != io.EOF {
					fmt.Println("Lex error:", err)
				}
				break
			}

			loc := stream.TokenLocation()
			fmt.Printf("%d:%d: %s\n", loc.Line, loc.Column, token)
		}
	}
}
