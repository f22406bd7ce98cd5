// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"log/slog"

	"github.com/coreos/go-systemd/v22/daemon"
)

// notifyReady signals service readiness to systemd when running under a
// Type=notify unit. Outside systemd the notification socket is absent and
// the call is a no-op.
func notifyReady() {
	sent, err := daemon.SdNotify(false, daemon.SdNotifyReady)
	if err != nil {
		slog.Warn("systemd ready notification failed", "error", err)
		return
	}
	if sent {
		slog.Debug("notified systemd: ready")
	}
}

// notifyStopping signals the beginning of shutdown to systemd.
func notifyStopping() {
	sent, err := daemon.SdNotify(false, daemon.SdNotifyStopping)
	if err != nil {
		slog.Warn("systemd stopping notification failed", "error", err)
		return
	}
	if sent {
		slog.Debug("notified systemd: stopping")
	}
}
