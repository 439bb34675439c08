package main

import "github.com/gdamore/tcell/v2"

// forwardEvents 把 poll 返回的事件转发到 out，poll 返回 nil 或 done 关闭后退出
func forwardEvents(poll func() tcell.Event, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}
