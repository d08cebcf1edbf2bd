package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/fulldump/recordlist/bootstrap"
	"github.com/fulldump/recordlist/configuration"
)

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	start, _, err := bootstrap.Bootstrap(&c)
	if err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(-1)
	}

	err = start()
	if err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(-1)
	}
}
