package dispatch

import (
	"github.com/kestrelrts/missionvm/vm"
	"github.com/kestrelrts/missionvm/world"
)

// callCamera implements §4.E group 11 for both the main and PIP cameras.
func (d *Dispatcher) callCamera(funcID int, args []any) any {
	switch funcID {
	case fnCameraLookAtPoint, fnCameraPanToPoint, fnCameraScrollToPoint:
		return d.cameraPan(&d.State.MainCamera, argPos(args, 0))
	case fnCameraTrackObject:
		return d.cameraTrack(&d.State.MainCamera, world.EntityID(argInt(args, 0)))
	case fnCameraStartRotate:
		d.State.MainCamera.Spin = CameraSpin{Active: true, Speed: argInt(args, 0), Dir: argInt(args, 1)}
		return int32(0)
	case fnCameraStopRotate:
		d.State.MainCamera.Spin.Active = false
		return int32(0)
	case fnCameraIsSpinning:
		return boolInt32(d.State.MainCamera.Spin.Active)
	case fnCameraStore:
		d.cameraStore(&d.State.MainCamera)
		return int32(0)
	case fnCameraRestore:
		d.cameraRestore(&d.State.MainCamera)
		return int32(0)

	case fnPIPCameraLookAtPoint:
		return d.cameraPan(&d.State.PIPCamera, argPos(args, 0))
	case fnPIPCameraTrackObject:
		return d.cameraTrack(&d.State.PIPCamera, world.EntityID(argInt(args, 0)))
	case fnPIPCameraStartRotate:
		d.State.PIPCamera.Spin = CameraSpin{Active: true, Speed: argInt(args, 0), Dir: argInt(args, 1)}
		return int32(0)
	case fnPIPCameraStopRotate:
		d.State.PIPCamera.Spin.Active = false
		return int32(0)
	case fnPIPCameraStore:
		d.cameraStore(&d.State.PIPCamera)
		return int32(0)
	case fnPIPCameraRestore:
		d.cameraRestore(&d.State.PIPCamera)
		return int32(0)
	}
	return int32(0)
}

func (d *Dispatcher) cameraPan(cam *CameraState, p vm.Pos) int32 {
	cam.Tracking = false
	cam.TrackEid = 0
	d.World.PanCameraTo(d.Ctx, toWorldPoint(p))
	return 0
}

func (d *Dispatcher) cameraTrack(cam *CameraState, eid world.EntityID) int32 {
	cam.Tracking = true
	cam.TrackEid = eid
	if p, ok := d.World.Position(eid); ok {
		d.World.PanCameraTo(d.Ctx, p)
	}
	return 0
}

func (d *Dispatcher) cameraStore(cam *CameraState) {
	snap := CameraSnapshot{}
	if cam.Tracking {
		if p, ok := d.World.Position(cam.TrackEid); ok {
			snap.X, snap.Z = p.X, p.Z
		}
	}
	if cam.Spin.Active {
		snap.Rotation = float32(cam.Spin.Dir)
	}
	cam.Stored = &snap
}

func (d *Dispatcher) cameraRestore(cam *CameraState) {
	if cam.Stored == nil {
		return
	}
	d.World.PanCameraTo(d.Ctx, world.Point{X: cam.Stored.X, Z: cam.Stored.Z})
}
