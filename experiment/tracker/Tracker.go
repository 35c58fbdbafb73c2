// Package tracker implements Trackers, which track and save data
// generated in an experiment
package tracker

import (
	"encoding/gob"
	"log"
	"os"

	ts "github.com/gridlearn/gridlearn/timestep"
)

// Interface Tracker keeps track of experiment data, making the raw
// per-episode sequences available in memory and saving the data after
// the experiment has finished
type Tracker interface {
	Track(t ts.TimeStep)
	Data() []float64
	Save()
}

// LoadData loads and returns the data saved by a Tracker
func LoadData(filename string) []float64 {
	// Open file
	file, err := os.Open(filename)
	if err != nil {
		log.Fatalf("could not open data file: %v", err)
	}
	defer file.Close()

	// Create the decoder and the variable to store the data in
	dec := gob.NewDecoder(file)
	var data []float64

	// Decode the data
	err = dec.Decode(&data)
	if err != nil {
		log.Fatalf("could not decode data: %v", err)
	}

	return data
}

// save gob-encodes data to the file at filename
func save(filename string, data []float64) {
	file, err := os.Create(filename)
	if err != nil {
		log.Fatalf("could not open save file: %v", err)
	}
	defer file.Close()

	en := gob.NewEncoder(file)
	if err = en.Encode(data); err != nil {
		log.Fatalf("could not encode tracked data: %v", err)
	}
}
