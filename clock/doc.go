/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

/*
Package clock reads and sets the system realtime clock.

System implements the wall clock accessor used by the settings endpoint:
Set jumps CLOCK_REALTIME to an absolute time via clock_settime(2), Step moves it
by an offset via clock_adjtime(2) with ADJ_SETOFFSET and then marks the clock as
synchronised. Both require CAP_SYS_TIME.
*/
package clock
