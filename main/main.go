package main

import (
	"bytes"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/binrec"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1
	rec := binrec.New(
		binrec.NewField("id", binrec.Int32()),
		binrec.NewField("level", binrec.Int8()),
		binrec.NewField("score", binrec.Int16()),
		binrec.NewField("name", binrec.String(8)),
	)
	rec.Set("id", binrec.IntValue(1001))
	rec.Set("level", binrec.IntValue(7))
	rec.Set("score", binrec.IntValue(-1200))
	rec.Set("name", binrec.StrValue("gopher!!"))
	out := binrec.New(
		binrec.NewField("id", binrec.Int32()),
		binrec.NewField("level", binrec.Int8()),
		binrec.NewField("score", binrec.Int16()),
		binrec.NewField("name", binrec.String(8)),
	)
	var buf bytes.Buffer
	for i := 0; i < 10000; i++ {
		buf.Reset()
		rec.Write(&buf)
		out.Read(&buf)
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
