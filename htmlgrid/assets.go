package htmlgrid

import "html/template"

// StyleSheet returns the base styles for the grid markup.
// The host document embeds it once, typically inside a <style> element.
func StyleSheet() template.CSS {
	return styleSheet
}

// ToggleScript returns the client-side expand/collapse handler
// as a complete <script> element.
//
// The host document embeds it explicitly, once. The script guards
// against double registration, embedding it a second time is a no-op.
// A click on an expander control toggles the "hidden" class of all
// subrow cells sharing the expander's parent row element and flips
// the expander icon, other rows are never affected.
func ToggleScript() template.HTML {
	return toggleScript
}

const styleSheet template.CSS = `.gridtable{display:grid}
.gridtable>.row{display:contents}
.gridtable .cell{padding:.25rem}
.gridtable .header{font-weight:bold}
.gridtable .hidden{display:none}
.gridtable .no-data{grid-column:1/-1;font-style:italic;opacity:.6}
.gridtable .footer{grid-column:1/-1}
.gridtable .expander{cursor:pointer;user-select:none}`

const toggleScript template.HTML = `<script>
(function () {
	if (window.gridtableToggle) { return }
	window.gridtableToggle = true
	document.addEventListener('click', function (ev) {
		var expander = ev.target.closest('.gridtable .expander')
		if (!expander) { return }
		var expanded = expander.classList.toggle('expanded')
		expander.textContent = expanded ? '` + ExpandedIcon + `' : '` + CollapsedIcon + `'
		var subrows = expander.parentElement.querySelectorAll('.subrow')
		for (var i = 0; i < subrows.length; i++) {
			subrows[i].classList.toggle('hidden', !expanded)
		}
	})
})()
</script>`
