package service

import (
	"log"
)

func (use *PhotoServiceImplement) taskWorker(i int) {
	defer use.wg.Done()
	for {
		select {
		case task, ok := <-use.Task_queue:
			if !ok {
				log.Printf("[INFO] [Gallery-Service] [Worker: %v] Task channel closed, stopping worker", i)
				return
			}
			task()
		case <-use.closechan:
			return
		}
	}
}
