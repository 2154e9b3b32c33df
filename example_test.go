package spinpak_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hugo-peni/spinpak"
)

func Example() {
	scene, err := spinpak.NewScene()
	if err != nil {
		log.Fatal(err)
	}
	scene.Revolutions = 3

	doc, err := scene.Document()
	if err != nil {
		log.Fatal(err)
	}
	var buf bytes.Buffer
	if err := doc.WriteSVG(&buf); err != nil {
		log.Fatal(err)
	}
	fmt.Println(doc.Label)
	// Output: SpinPAK Logo - 3× Revolution
}
