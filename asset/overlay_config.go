package asset

// DefaultOverlayConfig returns the default overlay YAML configuration
const DefaultOverlayConfig = `
color_scheme: Default
show_grid: false
combine_overlapping_borders: true
auto_updates_per_second: 2

controls:
  toggle: F2
  next: "]"
  previous: "["
  export: F12

layers:
  auto:
    enabled: true
    updates_per_second: 2
    update_on_view_change: true
  bombs:
    enabled: true
    updates_per_second: 4
    update_on_view_change: true
    shortcut: F5
  sprinklers:
    enabled: true
    updates_per_second: 2
    update_on_view_change: true
    shortcut: F6
  scarecrows:
    enabled: true
    updates_per_second: 2
    update_on_view_change: true
    shortcut: F7
  junimo_huts:
    enabled: true
    updates_per_second: 2
    update_on_view_change: true
    shortcut: F8
`
