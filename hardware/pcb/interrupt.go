package pcb

import "github.com/Justin-Credible/galaga-emulator/hardware/memory"

// handleInterrupts accumulates CPU1's cycle count and, once a full
// 1/60s window has elapsed, composes and delivers a frame and
// dispatches each CPU's pending interrupt.
func (p *PCB) handleInterrupts(c1 int) {
	p.cyclesSinceInterrupt += c1
	if p.cyclesSinceInterrupt < CyclesPerFrame {
		return
	}

	p.deliverFrame()
	p.deliverAudio()

	p.iePrevious[0] = p.Bus.IRQEnable(memory.CPU1)
	p.iePrevious[1] = p.Bus.IRQEnable(memory.CPU2)
	p.iePrevious[2] = p.Bus.IRQEnable(memory.CPU3)

	if p.iePrevious[0] {
		p.Bus.SetIRQEnable(memory.CPU1, false)
		p.CPU1.InjectMaskable(p.Bus.Port0LastWrite())
	}

	if p.iePrevious[1] {
		p.Bus.ForceRunningCPU2()
		p.Bus.SetIRQEnable(memory.CPU2, false)
		p.CPU2.InjectMaskable(0x00)
	}

	if p.iePrevious[2] {
		p.Bus.ForceRunningCPU3()
		p.Bus.SetIRQEnable(memory.CPU3, false)
		p.CPU3.InjectNMI()
	}

	p.cyclesSinceInterrupt = 0
}

func (p *PCB) deliverFrame() {
	if p.Composer == nil {
		return
	}
	frame := p.Composer.CaptureFrame(p.Bus)
	if p.VideoSink != nil {
		p.VideoSink.Render(frame)
	}
}

func (p *PCB) deliverAudio() {
	if p.AudioSink == nil {
		return
	}
	p.AudioSink.Mix(audioStateFromBus(p.Bus))
}
